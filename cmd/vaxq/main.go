package main

import (
	"fmt"
	"os"
	"time"

	"vaxq-go/internal/app"
	"vaxq-go/internal/config"
	"vaxq-go/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newApp reads the config and creates an App. The caller must defer a.Close().
func newApp() (*app.App, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// newLoadedApp creates an App with the data file already loaded.
// Used by the one-shot commands; the session loads on demand instead.
func newLoadedApp() (*app.App, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}

	if _, _, err := a.LoadData(); err != nil {
		a.Close()
		return nil, fmt.Errorf("loading data: %w", err)
	}
	return a, nil
}

var rootCmd = &cobra.Command{
	Use:   "vaxq",
	Short: "Vaccination request manager",
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		hostID := uuid.New().String()
		cfg := config.NewConfig(hostID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Host ID:   %s\n", hostID)
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Data File: %s\n", cfg.Store.Path)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Host ID:    %s\n", cfg.HostID)
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("Store:      %s (%s)\n", cfg.Store.Type, cfg.Store.Path)
		fmt.Printf("Journal:    %s\n", cfg.Journal.Type)
		return nil
	},
}

// session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive editing session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		return a.RunSession(os.Stdin, os.Stdout, interactive)
	},
}

// list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLoadedApp()
		if err != nil {
			return err
		}
		defer a.Close()

		printRequests(a.List())
		return nil
	},
}

// add command
var addCmd = &cobra.Command{
	Use:   "add ID NAME PHONE VACCINE DATE START_TIME END_TIME",
	Short: "Add a request",
	Args:  cobra.ExactArgs(7),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLoadedApp()
		if err != nil {
			return err
		}
		defer a.Close()

		r, err := model.NewFromFields(args)
		if err != nil {
			return err
		}

		a.Add(r)
		if err := a.SaveData(); err != nil {
			return fmt.Errorf("saving data: %w", err)
		}

		fmt.Println("Request added.")
		return nil
	},
}

// remove command
var removeCmd = &cobra.Command{
	Use:   "remove ID",
	Short: "Remove a request by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLoadedApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Remove(args[0]); err != nil {
			return err
		}
		if err := a.SaveData(); err != nil {
			return fmt.Errorf("saving data: %w", err)
		}

		fmt.Println("Request removed.")
		return nil
	},
}

// edit command
var editCmd = &cobra.Command{
	Use:   "edit ID NAME PHONE VACCINE DATE START_TIME END_TIME",
	Short: "Edit a request by ID",
	Long:  "Edit replaces every field of the first request whose ID matches.",
	Args:  cobra.ExactArgs(7),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLoadedApp()
		if err != nil {
			return err
		}
		defer a.Close()

		updated, err := model.NewFromFields(args)
		if err != nil {
			return err
		}

		if err := a.Edit(args[0], updated); err != nil {
			return err
		}
		if err := a.SaveData(); err != nil {
			return fmt.Errorf("saving data: %w", err)
		}

		fmt.Println("Request updated.")
		return nil
	},
}

// search command
var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search requests",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLoadedApp()
		if err != nil {
			return err
		}
		defer a.Close()

		printRequests(a.Search(args[0]))
		return nil
	},
}

// sort command
var sortCmd = &cobra.Command{
	Use:   "sort FIELD",
	Short: "Sort requests by field",
	Long:  "Stably sorts the stored requests by one of: id, name, phone, vaccine, date, start_time, end_time.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newLoadedApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Sort(args[0]); err != nil {
			return err
		}
		if err := a.SaveData(); err != nil {
			return fmt.Errorf("saving data: %w", err)
		}

		fmt.Println("Requests sorted.")
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View journaled operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ops, err := a.History(limit)
		if err != nil {
			return err
		}

		if len(ops) == 0 {
			fmt.Println("No operations recorded.")
			return nil
		}

		for _, op := range ops {
			duration := ""
			if op.FinishedAt.Valid {
				d := op.FinishedAt.Time.Sub(op.StartedAt)
				duration = d.Truncate(time.Millisecond).String()
			}
			fmt.Printf("#%d  %-8s  %s  %-10s  %s  %s\n",
				op.ID,
				op.Operation,
				op.StartedAt.Format("2006-01-02 15:04:05"),
				op.Status,
				op.Parameters,
				duration,
			)
		}
		return nil
	},
}

func printRequests(requests []*model.Request) {
	if len(requests) == 0 {
		fmt.Println("The collection is empty")
		return
	}
	for _, r := range requests {
		fmt.Println(r)
	}
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	// root commands
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
}
