package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-wt3000/protocol"
	"github.com/moffa90/go-wt3000/usb"
	"github.com/moffa90/go-wt3000/wt3000"
	"github.com/moffa90/go-wt3000/wtlog"
)

var (
	// Global flags
	debugFlag   bool
	timeoutFlag time.Duration

	// measure flags
	formatFlag string
	rawFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "wt3000ctl",
	Short: "wt3000ctl - Yokogawa WT3000 power analyzer control",
	Long: `wt3000ctl drives a Yokogawa WT3000 power analyzer over USB.
It can identify the instrument, switch it between remote and local mode,
and read numeric measurement data in ASCII or binary float format.`,
}

var identifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "Query the instrument identification string",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := connectAnalyzer()
		if err != nil {
			return err
		}
		defer cleanup()

		id, err := a.Identify(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Read the current numeric measurement values",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := protocol.ParseNumericFormat(formatFlag)
		if err != nil {
			return err
		}

		a, cleanup, err := connectAnalyzer()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := context.Background()
		if err := a.SetNumericFormat(ctx, format); err != nil {
			return err
		}

		if rawFlag {
			raw, err := a.GetNumericValues(ctx, 4096)
			if err != nil {
				return err
			}
			os.Stdout.Write(raw)
			return nil
		}

		values, err := a.GetNumericValuesAsFloats(ctx)
		if err != nil {
			return err
		}
		for i, v := range values {
			fmt.Printf("%d: %g\n", i+1, v)
		}
		return nil
	},
}

var remoteCmd = &cobra.Command{
	Use:   "remote {on|off}",
	Short: "Switch the instrument between remote and local mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		on, err := protocol.ParseBool(args[0])
		if err != nil {
			return err
		}

		a, cleanup, err := connectAnalyzer()
		if err != nil {
			return err
		}
		defer cleanup()

		return a.SetRemote(context.Background(), on)
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter <register> {RISE|FALL|BOTH|NEVER}",
	Short: "Configure a status register transition filter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		condition, err := protocol.ParseTransition(args[1])
		if err != nil {
			return err
		}

		a, cleanup, err := connectAnalyzer()
		if err != nil {
			return err
		}
		defer cleanup()

		return a.SetStatusFilter(context.Background(), args[0], condition)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log every command and response")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 5*time.Second, "Per-read timeout on the USB channel")

	measureCmd.Flags().StringVarP(&formatFlag, "format", "f", "ascii", "Numeric format: ascii or float")
	measureCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the raw payload instead of decoded values")

	rootCmd.AddCommand(identifyCmd, measureCmd, remoteCmd, filterCmd)
}

// connectAnalyzer opens the instrument over USB and runs the startup
// sequence. The returned cleanup closes the USB handles.
func connectAnalyzer() (*wt3000.Analyzer, func(), error) {
	dev, err := usb.Open()
	if err != nil {
		return nil, nil, err
	}

	level := wt3000.LevelError
	if debugFlag {
		level = wt3000.LevelDebug
	}

	a := wt3000.New(
		wt3000.WithLogger(wtlog.NewConsole("wt3000ctl")),
		wt3000.WithLogLevel(level),
		wt3000.WithReadTimeout(timeoutFlag),
	)
	a.SetTransport(dev)

	if err := a.Connect(context.Background()); err != nil {
		dev.Close()
		return nil, nil, err
	}

	return a, func() { dev.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
