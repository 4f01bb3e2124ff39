package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joeri-hu/tracktune/internal/config"
	"github.com/joeri-hu/tracktune/internal/paths"
	"github.com/joeri-hu/tracktune/internal/setting"
	"github.com/joeri-hu/tracktune/internal/store"
	"github.com/joeri-hu/tracktune/internal/tui"
)

func main() {
	rigFlag := flag.String("rig", "", "rig name (defaults to \"default\")")
	dbFlag := flag.Bool("db", false, "use the SQLite store instead of TOML")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	rig := paths.Resolve(*rigFlag)
	if err := paths.ValidateName(rig); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	st := openStore(rig, *dbFlag)
	cfg := config.Defaults()
	store.Load(st, store.Items(cfg.Items()))

	switch args[0] {
	case "list":
		cmdList(cfg, *jsonFlag)
	case "get":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "usage: trackctl get <tagname>")
			os.Exit(1)
		}
		cmdGet(cfg, args[1])
	case "set":
		if len(args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: trackctl set <tagname> <value>")
			os.Exit(1)
		}
		cmdSet(cfg, st, args[1], args[2])
	case "keys":
		cmdKeys(cfg, *jsonFlag)
	case "render":
		fmt.Print(tui.BuildMenu(cfg, nil).Render())
	case "revisions":
		cmdRevisions(st, *jsonFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: trackctl [--rig <name>] [--db] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  list                   List all settings")
	fmt.Fprintln(os.Stderr, "  get <tagname>          Print one setting's value")
	fmt.Fprintln(os.Stderr, "  set <tagname> <value>  Change a setting and save")
	fmt.Fprintln(os.Stderr, "  keys                   List the console key bindings")
	fmt.Fprintln(os.Stderr, "  render                 Print the menu as the console shows it")
	fmt.Fprintln(os.Stderr, "  revisions              List past saves (SQLite store only)")
}

type saver interface {
	store.Store
	Flush() error
}

func openStore(rig string, useDB bool) saver {
	if err := paths.EnsureDir(rig); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if useDB {
		db, err := store.Open(paths.DBPath(rig))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return db
	}
	f, err := store.OpenFile(paths.SettingsPath(rig))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return f
}

func find(cfg *config.Config, tagname string) *setting.Setting {
	for _, item := range cfg.Items() {
		if item.Tagname() == tagname {
			return item
		}
	}
	fmt.Fprintf(os.Stderr, "error: unknown setting %q\n", tagname)
	os.Exit(1)
	return nil
}

func cmdList(cfg *config.Config, jsonOut bool) {
	if jsonOut {
		out := map[string]string{}
		for _, item := range cfg.Items() {
			out[item.Tagname()] = item.String()
		}
		outputJSON(out)
		return
	}
	for _, item := range cfg.Items() {
		fmt.Printf("%-20s %16s\n", item.Tagname(), item)
	}
}

func cmdGet(cfg *config.Config, tagname string) {
	fmt.Println(find(cfg, tagname).String())
}

func cmdSet(cfg *config.Config, st saver, tagname, value string) {
	item := find(cfg, tagname)
	if !item.Accepts(value) {
		// Malformed input parses as nothing; say so instead of silently
		// saving the old value back.
		fmt.Fprintf(os.Stderr, "error: %q is not a valid %s value\n", value, item.Kind())
		os.Exit(1)
	}
	item.SetText(value)
	store.Save(st, store.Items(cfg.Items()))
	if err := st.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s = %s\n", item.Tagname(), item)
}

func cmdKeys(cfg *config.Config, jsonOut bool) {
	bindings := tui.BuildMenu(cfg, nil).Bindings()
	if jsonOut {
		type entry struct {
			Key     string `json:"key"`
			Tagname string `json:"tagname"`
			Value   string `json:"value"`
		}
		out := make([]entry, 0, len(bindings))
		for _, b := range bindings {
			out = append(out, entry{
				Key:     string(b.Key()),
				Tagname: b.Setting().Tagname(),
				Value:   b.Setting().String(),
			})
		}
		outputJSON(out)
		return
	}
	for _, b := range bindings {
		fmt.Printf("%c  %-20s %16s\n", b.Key(), b.Setting().Tagname(), b.Setting())
	}
}

func cmdRevisions(st saver, jsonOut bool) {
	db, ok := st.(*store.DB)
	if !ok {
		fmt.Fprintln(os.Stderr, "error: revisions need the SQLite store (--db)")
		os.Exit(1)
	}
	revs, err := db.Revisions(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if jsonOut {
		outputJSON(revs)
		return
	}
	if len(revs) == 0 {
		fmt.Println("No saves recorded.")
		return
	}
	for _, r := range revs {
		saved := time.UnixMilli(r.SavedAt).Format(time.RFC3339)
		fmt.Printf("%s  %s  %d settings\n", r.ID, saved, r.Entries)
	}
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
