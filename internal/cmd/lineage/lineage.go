// Package lineage parses generator flags, grows a family tree and serves the
// report menu.
package lineage

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/lineage/internal/lineage/demography"
	"github.com/louisbranch/lineage/internal/lineage/generator"
	"github.com/louisbranch/lineage/internal/lineage/menu"
	"github.com/louisbranch/lineage/internal/lineage/person"
	"github.com/louisbranch/lineage/internal/lineage/report"
	"github.com/louisbranch/lineage/internal/lineage/tree"
	"github.com/louisbranch/lineage/internal/lineage/tuning"
	entrypoint "github.com/louisbranch/lineage/internal/platform/cmd"
	"github.com/louisbranch/lineage/internal/platform/otel"
	"github.com/louisbranch/lineage/internal/random"
)

// Config holds lineage command configuration.
type Config struct {
	DataDir    string `env:"LINEAGE_DATA_DIR" envDefault:"data"`
	Seed       int64  `env:"LINEAGE_SEED"`
	TuningPath string `env:"LINEAGE_TUNING_PATH"`
	Lang       string `env:"LINEAGE_LANG" envDefault:"en"`
	Verbose    bool   `env:"LINEAGE_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config. Flags are
// registered first so env values become their defaults.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	fs.StringVar(&cfg.DataDir, "data-dir", "", "Directory holding the demographic CSV files (default data)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.TuningPath, "tuning", "", "Optional YAML file overriding generation parameters")
	fs.StringVar(&cfg.Lang, "lang", "", "Report language, en or pt-BR (default en)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the data files, grows the tree and reads menu commands from in
// until quit or end of input.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceLineage, func(ctx context.Context) error {
		params, err := tuning.Load(cfg.TuningPath)
		if err != nil {
			return err
		}
		p := report.NewPrinter(out, report.ResolveTag(cfg.Lang))

		p.Println(report.ReadingFilesKey)
		table, err := loadTable(ctx, cfg.DataDir)
		if err != nil {
			return err
		}

		rng, seed, err := random.New(cfg.Seed)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			log.Printf("seed %d", seed)
		}

		p.Println(report.GeneratingKey)
		reg, stats, err := grow(ctx, table, rng, params)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			log.Printf("grew %d people over %d generations (%d marriages, %d children, %d dropped past %d)",
				stats.People, stats.Generations, stats.Marriages, stats.Children, stats.DroppedChildren, params.CutoffYear)
		}

		return menu.Run(ctx, in, p, reg)
	})
}

func loadTable(ctx context.Context, dir string) (*demography.Table, error) {
	_, span := otel.Tracer().Start(ctx, "demography.load",
		trace.WithAttributes(attribute.String("lineage.data_dir", dir)))
	defer span.End()

	table, err := demography.Load(dir)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("load demography: %w", err)
	}
	if first, last, ok := table.YearRange(); ok {
		span.SetAttributes(
			attribute.Int("lineage.first_year", first),
			attribute.Int("lineage.last_year", last),
		)
	}
	return table, nil
}

func grow(ctx context.Context, table *demography.Table, rng random.Source, params tuning.Tuning) (*person.Registry, tree.Stats, error) {
	_, span := otel.Tracer().Start(ctx, "tree.grow",
		trace.WithAttributes(attribute.Int("lineage.cutoff_year", params.CutoffYear)))
	defer span.End()

	reg := person.NewRegistry()
	gen := generator.New(table, rng, generator.WithLifespanNoise(params.LifespanNoise))
	stats, err := tree.New(reg, gen, table, rng, params).Grow()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, stats, fmt.Errorf("grow tree: %w", err)
	}
	span.SetAttributes(
		attribute.Int("lineage.people", stats.People),
		attribute.Int("lineage.marriages", stats.Marriages),
		attribute.Int("lineage.children", stats.Children),
		attribute.Int("lineage.dropped_children", stats.DroppedChildren),
		attribute.Int("lineage.generations", stats.Generations),
	)
	return reg, stats, nil
}
