package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"

	"github.com/allauncher/sysprops"
	"github.com/allauncher/sysprops/config"
	"github.com/allauncher/sysprops/datastore/ddb"
	envstore "github.com/allauncher/sysprops/datastore/env"
	"github.com/allauncher/sysprops/datastore/process"
	"github.com/allauncher/sysprops/params"
)

type options struct {
	version    bool
	script     string
	envFiles   stringList
	yamlFile   string
	propsFile  string
	fromEnv    bool
	format     string
	exportEnv  bool
	useDDB     bool
	configFile string
}

type stringList []string

func (s *stringList) String() string {
	return fmt.Sprint(*s)
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("sysprops", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.BoolVar(&o.version, "version", false, "Show version information")
	fs.BoolVar(&o.version, "v", false, "Show version information (short)")
	fs.StringVar(&o.script, "script", "", "Launch script to read parameters from (- for stdin)")
	fs.Var(&o.envFiles, "env-file", "Dotenv parameter file (repeatable)")
	fs.StringVar(&o.yamlFile, "params", "", "YAML parameter file")
	fs.StringVar(&o.propsFile, "properties", "", ".properties parameter file")
	fs.BoolVar(&o.fromEnv, "from-env", false, "Read ALLAUNCHER_* parameters from the environment")
	fs.StringVar(&o.format, "format", "jvm", "Output format: jvm, properties or env")
	fs.BoolVar(&o.exportEnv, "export-env", false, "Mirror properties into the environment")
	fs.BoolVar(&o.useDDB, "ddb", false, "Mirror properties into DynamoDB (needs AWS_DDB_TABLE)")
	fs.StringVar(&o.configFile, "config", ".env", "Dotenv file with command settings")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch o.format {
	case "jvm", "properties", "env":
	default:
		return nil, fmt.Errorf("unknown format %q", o.format)
	}
	return &o, nil
}

// loadParams merges sources in a fixed order: files, then the environment,
// then the launch script.
func loadParams(o *options, stdin io.Reader) (*params.Params, error) {
	var sources []*params.Params

	if len(o.envFiles) > 0 {
		p, err := params.LoadDotenv(o.envFiles...)
		if err != nil {
			return nil, err
		}
		sources = append(sources, p)
	}
	if o.yamlFile != "" {
		p, err := params.LoadYAML(o.yamlFile)
		if err != nil {
			return nil, err
		}
		sources = append(sources, p)
	}
	if o.propsFile != "" {
		p, err := params.LoadProperties(o.propsFile)
		if err != nil {
			return nil, err
		}
		sources = append(sources, p)
	}
	if o.fromEnv {
		p, err := params.FromEnv(env.Options{})
		if err != nil {
			return nil, err
		}
		sources = append(sources, p)
	}
	if o.script != "" {
		r := stdin
		if o.script != "-" {
			f, err := os.Open(o.script)
			if err != nil {
				return nil, fmt.Errorf("open launch script: %w", err)
			}
			defer f.Close()
			r = f
		}
		p, err := params.ParseScript(r)
		if err != nil {
			return nil, err
		}
		sources = append(sources, p)
	}
	return params.Merge(sources...), nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if o.version {
		info := sysprops.GetVersionInfo()
		fmt.Fprintf(stdout, "sysprops version %s\n", info.Version)
		fmt.Fprintf(stdout, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(stdout, "Go version: %s\n", info.GoVersion)
		return nil
	}

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	p, err := loadParams(o, stdin)
	if err != nil {
		return err
	}
	logger.Debug("parameters loaded", zap.Strings("keys", p.Keys()))

	store := process.Default()
	set := sysprops.NewStoreSet()
	if err := set.Register("process", store); err != nil {
		return err
	}

	envs := envstore.New(envstore.WithPrefix(cfg.EnvPrefix))
	if o.exportEnv || o.format == "env" {
		if err := set.Register("env", envs); err != nil {
			return err
		}
	}

	if o.useDDB {
		if cfg.DDBTable == "" {
			return fmt.Errorf("-ddb requires AWS_DDB_TABLE")
		}
		remote, err := ddb.NewDynamodbPropertyStore(ctx, cfg.AWSAccessKey, cfg.AWSSecretKey,
			cfg.AWSRegion, cfg.DDBTable, cfg.Namespace, ddb.WithLogger(logger))
		if err != nil {
			return err
		}
		if err := set.Register("dynamodb", remote); err != nil {
			return err
		}
	}

	if err := sysprops.Apply(ctx, p, set); err != nil {
		logger.Error("projection failed", zap.Error(err))
		return err
	}
	logger.Info("properties projected", zap.Strings("stores", set.List()))

	props, err := store.Properties(ctx)
	if err != nil {
		return err
	}

	switch o.format {
	case "jvm":
		for _, f := range sysprops.JVMFlags(props) {
			fmt.Fprintln(stdout, f)
		}
	case "properties":
		return sysprops.WriteProperties(stdout, props)
	case "env":
		lines := envs.Environ()
		sort.Strings(lines)
		for _, l := range lines {
			fmt.Fprintln(stdout, l)
		}
	}
	return nil
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "sysprops: %v\n", err)
		os.Exit(1)
	}
}
