package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const usageLong = `Partition the people in a roster file into teams of at most
max-team-size members, minimizing grading time plus complaints about team
size, missing friends and present foes.

Positional arguments:
  roster    Path to the roster (text lines "name size friends foes", or JSON)
  grading   Time to grade one team's assignment
  foe       Time a person spends complaining per foe in their team
  friend    Time a person spends complaining per missing friend

The three weights may also come from flags, TEAMS_* environment variables
or a YAML config file; positional values win.`

// newRootCmd builds the CLI around a private viper instance so that tests
// can run it repeatedly.
func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "team-optimizer <roster> [grading foe friend]",
		Short:         "Assign people to teams with squeaky-wheel construction and tabu search",
		Long:          usageLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 4 {
				return fmt.Errorf("want <roster> or <roster> <grading> <foe> <friend>, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	def := DefaultConfig()
	f := cmd.Flags()
	f.StringP("config", "c", "", "YAML config file with weights and search limits")
	f.Int("grading-cost", def.GradingCost, "cost of grading one team")
	f.Int("size-cost", def.SizeCost, "cost of a team size that differs from the preference")
	f.Int("foe-cost", def.FoeCost, "cost per foe in a person's team")
	f.Int("friend-cost", def.FriendCost, "cost per requested friend missing from a person's team")
	f.Int("max-team-size", def.MaxTeamSize, "maximum members per team")
	f.Int("tabu-tenure", def.TabuTenure, "iterations a relocated person stays frozen")
	f.Int("stagnation", def.StagnationLimit, "stop after this many iterations without improvement")
	f.StringP("format", "o", FormatText, "output format: text, json or yaml")
	f.BoolP("verbose", "v", false, "log every search iteration to stderr")
	f.Bool("print-input", false, "print the weights and resolved roster before optimizing")
	f.String("metrics-file", "", "write search metrics in Prometheus textfile format")

	for key, flag := range map[string]string{
		"config":           "config",
		"grading_cost":     "grading-cost",
		"size_cost":        "size-cost",
		"foe_cost":         "foe-cost",
		"friend_cost":      "friend-cost",
		"max_team_size":    "max-team-size",
		"tabu_tenure":      "tabu-tenure",
		"stagnation_limit": "stagnation",
		"format":           "format",
		"verbose":          "verbose",
		"print_input":      "print-input",
		"metrics_file":     "metrics-file",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
	return cmd
}

// loadConfig layers defaults, the config file, TEAMS_* environment
// variables, flags and finally positional weights.
func loadConfig(v *viper.Viper, weights []string) (Config, error) {
	cfg := DefaultConfig()
	v.SetDefault("grading_cost", cfg.GradingCost)
	v.SetDefault("size_cost", cfg.SizeCost)
	v.SetDefault("foe_cost", cfg.FoeCost)
	v.SetDefault("friend_cost", cfg.FriendCost)
	v.SetDefault("max_team_size", cfg.MaxTeamSize)
	v.SetDefault("tabu_tenure", cfg.TabuTenure)
	v.SetDefault("stagnation_limit", cfg.StagnationLimit)

	v.SetEnvPrefix("TEAMS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	if len(weights) == 3 {
		dst := []*int{&cfg.GradingCost, &cfg.FoeCost, &cfg.FriendCost}
		for i, s := range weights {
			n, err := strconv.Atoi(s)
			if err != nil {
				return cfg, fmt.Errorf("%w: weight %q is not an integer", ErrInvalidConfig, s)
			}
			*dst[i] = n
		}
	}
	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	cfg, err := loadConfig(v, args[1:])
	if err != nil {
		return err
	}
	log, err := newLogger(v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	roster, err := LoadRoster(args[0], cfg.MaxTeamSize)
	if err != nil {
		return err
	}
	log.Info("loaded roster", zap.String("path", args[0]), zap.Int("people", roster.Len()))
	out := cmd.OutOrStdout()
	if v.GetBool("print_input") {
		fmt.Fprintln(out, FormatInput(roster, cfg))
	}

	opt, err := NewOptimizer(roster, cfg, WithLogger(log))
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	res := opt.Optimize(ctx)

	if path := v.GetString("metrics_file"); path != "" {
		if err := opt.metrics.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return WriteResult(out, v.GetString("format"), res, roster)
}
