// Command janawaaz is a terminal client for the JanAwaaz backend. It keeps
// the user's selection in the local preference file and talks to the shared
// MySQL/Redis backend directly, like the platform's other companion
// processes.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/achantasri/JanAwaaz/internal/config"
	"github.com/achantasri/JanAwaaz/internal/data"
	"github.com/achantasri/JanAwaaz/internal/directory"
	"github.com/achantasri/JanAwaaz/internal/ledger"
	"github.com/achantasri/JanAwaaz/internal/logging"
	"github.com/achantasri/JanAwaaz/internal/remote"
	"github.com/achantasri/JanAwaaz/internal/resolver"
	"github.com/achantasri/JanAwaaz/internal/session"
	"github.com/achantasri/JanAwaaz/internal/topics"
	"github.com/achantasri/JanAwaaz/internal/types"
)

const usage = `usage: janawaaz <command> [flags]

commands:
  login    -uid <id>                  sign in with a stable user id
  logout                              sign out
  resolve  -tier <national|state> -pin <code> [-q <filter>]
  select   -id <constituency> [-pin <code>]
  topics                              list topics for the selected constituency
  vote     -topic <id> -direction <up|down>
  watch                               follow live topic and count updates
`

func main() {
	logging.BootstrapLogger()
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	prefsPath, err := session.DefaultPath()
	if err != nil {
		logging.Log.Fatalf("config dir: %v", err)
	}
	prefs := session.NewStore(prefsPath)
	dir := directory.New()

	switch os.Args[1] {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		uid := fs.String("uid", "", "stable user id")
		_ = fs.Parse(os.Args[2:])
		if *uid == "" {
			logging.Log.Fatal("login: -uid is required")
		}
		must(prefs.SetUser(*uid))
		fmt.Printf("signed in as %s\n", *uid)

	case "logout":
		must(prefs.SetUser(""))
		fmt.Println("signed out")

	case "resolve":
		fs := flag.NewFlagSet("resolve", flag.ExitOnError)
		tierName := fs.String("tier", "national", "electoral tier: national or state")
		pin := fs.String("pin", "", "postal code, 3-6 digits")
		query := fs.String("q", "", "free-text filter")
		_ = fs.Parse(os.Args[2:])
		runResolve(dir, *tierName, *pin, *query)

	case "select":
		fs := flag.NewFlagSet("select", flag.ExitOnError)
		id := fs.String("id", "", "constituency id")
		pin := fs.String("pin", "", "postal code that produced the match")
		_ = fs.Parse(os.Args[2:])
		runSelect(dir, prefs, *id, *pin)

	case "topics":
		store := mustStore()
		p := prefs.Load()
		if p.ConstituencyID == "" {
			logging.Log.Fatal("no constituency selected; run janawaaz select first")
		}
		list, err := store.ListTopics(context.Background(), p.ConstituencyID)
		must(err)
		printTopics(list)

	case "vote":
		fs := flag.NewFlagSet("vote", flag.ExitOnError)
		topicID := fs.String("topic", "", "topic id")
		direction := fs.String("direction", "", "up or down")
		_ = fs.Parse(os.Args[2:])
		runVote(prefs, *topicID, *direction)

	case "watch":
		runWatch(prefs)

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runResolve(dir *directory.Directory, tierName, pin, query string) {
	var tier directory.Tier
	switch tierName {
	case "national":
		tier = directory.TierNational
	case "state":
		tier = directory.TierAssembly
	default:
		logging.Log.Fatalf("resolve: unknown tier %q", tierName)
	}

	result := resolver.Resolve(dir, tier, resolver.Normalize(pin))
	if query != "" {
		result = resolver.Filter(result, query)
	}
	if result.Empty() {
		fmt.Println("no constituencies found; enter at least 3 digits of your PIN code")
		return
	}
	if result.Quality == resolver.QualityState {
		fmt.Println("broad match; enter your full 6-digit PIN code for better results")
	}
	for _, g := range result.Groups {
		fmt.Printf("%s\n", g.Label)
		for _, e := range g.Entries {
			if e.District != "" {
				fmt.Printf("  %-12s %s (%s)\n", e.ID, e.Name, e.District)
			} else {
				fmt.Printf("  %-12s %s\n", e.ID, e.Name)
			}
		}
	}
}

func runSelect(dir *directory.Directory, prefs *session.Store, id, pin string) {
	if id == "" {
		logging.Log.Fatal("select: -id is required")
	}
	tier := directory.TierOfID(id)
	if tier == directory.TierAssembly {
		if _, ok := dir.AssemblyByID(id); !ok {
			logging.Log.Fatalf("select: unknown constituency %s", id)
		}
	} else {
		if _, ok := dir.ByID(id); !ok {
			logging.Log.Fatalf("select: unknown constituency %s", id)
		}
	}
	must(prefs.SelectConstituency(id, tier, resolver.Normalize(pin)))
	fmt.Printf("selected %s\n", id)
}

func runVote(prefs *session.Store, topicID, direction string) {
	if topicID == "" || direction == "" {
		logging.Log.Fatal("vote: -topic and -direction are required")
	}
	p := prefs.Load()
	store := mustStore()
	ctx := context.Background()

	led := ledger.New(store, p.UID, p.ConstituencyID)
	must(led.Refresh(ctx))
	if err := led.Cast(ctx, topicID, direction); err != nil {
		logging.Log.Fatalf("vote: %v", err)
	}

	counts, err := store.VoteCounts(ctx, p.ConstituencyID, topicID)
	must(err)
	if led.Vote(topicID) == "" {
		fmt.Printf("vote removed; now %d up / %d down\n", counts.Up, counts.Down)
	} else {
		fmt.Printf("voted %s; now %d up / %d down\n", direction, counts.Up, counts.Down)
	}
}

func runWatch(prefs *session.Store) {
	p := prefs.Load()
	if p.ConstituencyID == "" {
		logging.Log.Fatal("no constituency selected; run janawaaz select first")
	}
	store := mustStore()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	view := topics.New(store)
	view.OnTopics(func(ts []types.Topic) {
		fmt.Printf("-- %d topics --\n", len(ts))
		printTopics(ts)
	})
	view.OnCounts(func(topicID string, c remote.Counts) {
		fmt.Printf("   %s: %d up / %d down\n", topicID, c.Up, c.Down)
	})
	must(view.Select(ctx, p.ConstituencyID))
	defer view.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}

func printTopics(list []types.Topic) {
	for _, t := range list {
		fmt.Printf("%s  [%s] %s\n", t.ID, t.Category, t.Title)
	}
}

func mustStore() *data.Store {
	cfg := config.Load()
	db := data.MustMySQL(cfg.MySQLDSN)
	rdb := data.MustRedis(cfg.RedisURL)
	return data.NewStore(db, rdb)
}

func must(err error) {
	if err != nil {
		logging.Log.Fatal(err)
	}
}
