// entitycore - Entity Description Resolution Engine
//
// Operator tool around the in-process resolution engine: loads the
// shipped rule catalog into a registry and either validates it or
// resolves a single query from the command line. The engine itself is a
// library; this binary exists for diagnostics and table authoring, not
// as a service.
//
// Usage:
//
//	entitycore validate
//	entitycore -category sensor -parameter ACTUAL_TEMPERATURE -device-model HmIP-BS-2 lookup
//	entitycore stats
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hausmatik/entity-core/internal/catalog"
	"github.com/hausmatik/entity-core/internal/description"
	"github.com/hausmatik/entity-core/internal/infrastructure/config"
	"github.com/hausmatik/entity-core/internal/infrastructure/logging"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Returning an error allows main to handle exit codes
// consistently.
func run(args []string) error {
	flags := flag.NewFlagSet("entitycore", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to config.yaml (optional)")

	category := flags.String("category", "", "data point category (lookup)")
	parameter := flags.String("parameter", "", "protocol parameter name (lookup)")
	deviceModel := flags.String("device-model", "", "device model identifier (lookup)")
	unit := flags.String("unit", "", "unit of measurement (lookup)")
	postfix := flags.String("postfix", "", "data point name postfix (lookup)")
	varName := flags.String("var-name", "", "system variable name (lookup)")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("expected one command: validate, lookup or stats")
	}
	command := flags.Arg(0)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Logging, version)

	reg := description.NewRegistry(cfg.Engine.CacheCapacity)
	reg.SetLogger(log.With("component", "description"))
	catalog.Bootstrap(reg, log, cfg.Engine.ValidateOnStart)

	switch command {
	case "validate":
		return runValidate(reg)
	case "lookup":
		q := description.Query{
			Category:    description.Category(*category),
			Parameter:   *parameter,
			DeviceModel: *deviceModel,
			Unit:        *unit,
			Postfix:     *postfix,
			VarName:     *varName,
		}
		return runLookup(reg, q)
	case "stats":
		return runStats(reg)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// loadConfig loads the file given via -config or ENTITYCORE_CONFIG,
// falling back to built-in defaults when neither is set.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = os.Getenv("ENTITYCORE_CONFIG")
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// runValidate prints one line per duplicate description key and fails
// when any is found, so it can gate table changes in CI.
func runValidate(reg *description.Registry) error {
	warnings := reg.Validate()
	for _, w := range warnings {
		fmt.Println(w)
	}
	if len(warnings) > 0 {
		return fmt.Errorf("%d validation warning(s)", len(warnings))
	}
	fmt.Println("rule table OK")
	return nil
}

// runLookup resolves a single query and prints the outcome.
func runLookup(reg *description.Registry, q description.Query) error {
	if q.Category == "" {
		return fmt.Errorf("lookup requires -category")
	}

	desc, ok := reg.Find(q)
	if !ok {
		fmt.Println("no match")
		return nil
	}

	fmt.Printf("key: %s\n", desc.Key)
	if desc.DeviceClass != "" {
		fmt.Printf("device_class: %s\n", desc.DeviceClass)
	}
	if desc.StateClass != "" {
		fmt.Printf("state_class: %s\n", desc.StateClass)
	}
	if desc.EntityCategory != "" {
		fmt.Printf("entity_category: %s\n", desc.EntityCategory)
	}
	if desc.Unit != "" {
		fmt.Printf("unit: %s\n", desc.Unit)
	}
	if desc.TranslationKey != "" {
		fmt.Printf("translation_key: %s\n", desc.TranslationKey)
	}
	fmt.Printf("enabled_by_default: %t\n", desc.EnabledByDefault)
	return nil
}

// runStats prints the number of registered rules per category.
func runStats(reg *description.Registry) error {
	for category, count := range reg.Stats() {
		fmt.Printf("%s: %d\n", category, count)
	}
	return nil
}
