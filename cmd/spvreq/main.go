// Command spvreq inspects and fixes the capability and extension
// declarations of SPIR-V modules.
//
// Usage:
//
//	spvreq check shader.spv --target vulkan
//	spvreq normalize shader.spv -o fixed.spv
//	spvreq info shader.spv
//
// Target options can come from flags, a TOML profile file (--profile) or
// SPVREQ_* environment variables, in that order of precedence.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"

	"github.com/gogpu/spvreq"
	"github.com/gogpu/spvreq/resolve"
	"github.com/gogpu/spvreq/spirv"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "spvreq",
})

// targetFlags holds the flag-level view of a target profile.
type targetFlags struct {
	target        string
	spirvVersion  string
	clientVersion string
	logical       bool
	physical      bool
	fullProfile   bool
	imageSupport  bool
	extensions    []string
	capabilities  []string
	profilePath   string
}

// profileFile is the TOML schema for --profile.
type profileFile struct {
	Target        string   `toml:"target"`
	SPIRVVersion  string   `toml:"spirv-version"`
	ClientVersion string   `toml:"client-version"`
	Logical       *bool    `toml:"logical"`
	FullProfile   bool     `toml:"full-profile"`
	ImageSupport  bool     `toml:"image-support"`
	Extensions    []string `toml:"extensions"`
	Capabilities  []string `toml:"capabilities"`
}

func main() {
	flags := &targetFlags{}

	root := &cobra.Command{
		Use:           "spvreq",
		Short:         "SPIR-V capability and extension requirement analyzer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.target, "target", "t", env.Str("SPVREQ_TARGET", "vulkan"), "target environment (vulkan or opencl)")
	pf.StringVar(&flags.spirvVersion, "spirv-version", env.Str("SPVREQ_SPIRV_VERSION", ""), "SPIR-V version the target consumes (default: module header)")
	pf.StringVar(&flags.clientVersion, "client-version", env.Str("SPVREQ_CLIENT_VERSION", ""), "client API version")
	pf.BoolVar(&flags.logical, "logical", false, "force the Logical addressing model")
	pf.BoolVar(&flags.physical, "physical", false, "force a physical addressing model")
	pf.BoolVar(&flags.fullProfile, "full-profile", env.Bool("SPVREQ_FULL_PROFILE"), "OpenCL full-profile device")
	pf.BoolVar(&flags.imageSupport, "image-support", env.Bool("SPVREQ_IMAGE_SUPPORT"), "OpenCL device with image support")
	pf.StringSliceVar(&flags.extensions, "ext", nil, "extension supported by the target (repeatable)")
	pf.StringSliceVar(&flags.capabilities, "cap", nil, "capability available beyond the baseline (repeatable)")
	pf.StringVarP(&flags.profilePath, "profile", "p", env.Str("SPVREQ_PROFILE", ""), "TOML profile file describing the target")

	var verbose bool
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	}

	root.AddCommand(checkCmd(flags), normalizeCmd(flags), infoCmd())

	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func checkCmd(flags *targetFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <module.spv>",
		Short: "Report missing, superfluous and unavailable declarations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			report, err := spvreq.Analyze(data, opts)
			if err != nil {
				return err
			}
			printReport(report)
			if !report.Satisfied() {
				return fmt.Errorf("%s does not satisfy the %s target", args[0], opts.Env)
			}
			logger.Info("module satisfies target", "file", args[0], "target", opts.Env)
			return nil
		},
	}
}

func normalizeCmd(flags *targetFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "normalize <module.spv>",
		Short: "Rewrite a module with exactly the declarations it needs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			fixed, err := spvreq.Normalize(data, opts)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}
			if err := os.WriteFile(output, fixed, 0o644); err != nil {
				return err
			}
			logger.Info("wrote normalized module", "file", output, "bytes", len(fixed))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: overwrite input)")
	return cmd
}

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <module.spv>",
		Short: "Print a module's header and declared features",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			m, err := spirv.DecodeModule(data)
			if err != nil {
				return err
			}
			fmt.Printf("version:      %s\n", m.Version)
			fmt.Printf("generator:    %#08x\n", m.Generator)
			fmt.Printf("bound:        %d\n", m.Bound)
			fmt.Printf("instructions: %d\n", len(m.Instructions))
			fmt.Printf("functions:    %d\n", len(m.Functions()))
			for _, in := range m.Instructions {
				switch in.Op {
				case spirv.OpCapability:
					fmt.Printf("capability:   %s\n", spirv.Capability(in.Operand(0)))
				case spirv.OpExtension:
					if name, ok := in.LiteralString(0); ok {
						fmt.Printf("extension:    %s\n", name)
					}
				}
			}
			return nil
		},
	}
}

// options merges the profile file (if any) with flag values into resolver
// options. Flags win over the file; the file wins over environment
// defaults already baked into the flags.
func (f *targetFlags) options() (resolve.Options, error) {
	merged := *f
	if f.profilePath != "" {
		data, err := os.ReadFile(f.profilePath)
		if err != nil {
			return resolve.Options{}, err
		}
		var pf profileFile
		if err := toml.Unmarshal(data, &pf); err != nil {
			return resolve.Options{}, fmt.Errorf("parse profile %s: %w", f.profilePath, err)
		}
		if merged.target == "vulkan" && pf.Target != "" {
			merged.target = pf.Target
		}
		if merged.spirvVersion == "" {
			merged.spirvVersion = pf.SPIRVVersion
		}
		if merged.clientVersion == "" {
			merged.clientVersion = pf.ClientVersion
		}
		if pf.Logical != nil && !merged.logical && !merged.physical {
			merged.logical = *pf.Logical
			merged.physical = !*pf.Logical
		}
		merged.fullProfile = merged.fullProfile || pf.FullProfile
		merged.imageSupport = merged.imageSupport || pf.ImageSupport
		merged.extensions = append(merged.extensions, pf.Extensions...)
		merged.capabilities = append(merged.capabilities, pf.Capabilities...)
	}
	return merged.build()
}

func (f *targetFlags) build() (resolve.Options, error) {
	var opts resolve.Options
	switch f.target {
	case "vulkan":
		opts.Env = resolve.EnvVulkan
	case "opencl":
		opts.Env = resolve.EnvOpenCL
	default:
		return opts, fmt.Errorf("unknown target %q (want vulkan or opencl)", f.target)
	}
	if f.spirvVersion != "" {
		v, err := spirv.ParseVersion(f.spirvVersion)
		if err != nil {
			return opts, err
		}
		opts.Version = v
	}
	if f.clientVersion != "" {
		v, err := spirv.ParseVersion(f.clientVersion)
		if err != nil {
			return opts, err
		}
		opts.ClientVersion = v
	}
	if f.logical && f.physical {
		return opts, fmt.Errorf("--logical and --physical are mutually exclusive")
	}
	if f.logical || f.physical {
		opts.Logical = f.logical
		opts.LogicalSet = true
	}
	opts.FullProfile = f.fullProfile
	opts.ImageSupport = f.imageSupport
	for _, e := range f.extensions {
		opts.Extensions = append(opts.Extensions, spirv.Extension(e))
	}
	for _, name := range f.capabilities {
		c, ok := spirv.CapabilityByName(name)
		if !ok {
			return opts, fmt.Errorf("unknown capability %q", name)
		}
		opts.Capabilities = append(opts.Capabilities, c)
	}
	logger.Debug("target options", "env", opts.Env, "spirv", opts.Version, "client", opts.ClientVersion)
	return opts, nil
}

func printReport(r *spvreq.Report) {
	for _, c := range r.Required.Capabilities {
		logger.Debug("required", "capability", c)
	}
	for _, e := range r.Required.Extensions {
		logger.Debug("required", "extension", e)
	}
	for _, c := range r.MissingCapabilities {
		logger.Warn("missing declaration", "capability", c)
	}
	for _, e := range r.MissingExtensions {
		logger.Warn("missing declaration", "extension", e)
	}
	for _, c := range r.SuperfluousCapabilities {
		logger.Info("superfluous declaration", "capability", c)
	}
	for _, e := range r.SuperfluousExtensions {
		logger.Info("superfluous declaration", "extension", e)
	}
	for _, c := range r.UnavailableCapabilities {
		logger.Error("not available on target", "capability", c)
	}
	for _, e := range r.UnsupportedExtensions {
		logger.Error("not supported by target", "extension", e)
	}
}
