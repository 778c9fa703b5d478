// Command lc3vm runs LC-3 object files.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lc3vm/internal/console"
	"lc3vm/internal/vm"
)

const (
	exitOK        = 0
	exitLoadError = 1
	exitUsage     = 2
	exitInterrupt = -2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	sugar := logger.Sugar()

	var debug bool
	exitCode := exitOK

	rootCmd := &cobra.Command{
		Use:          "lc3vm <image-file> [image-file...]",
		Short:        "Run LC-3 object files",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, images []string) error {
			code, err := execute(images, debug, sugar)
			exitCode = code
			return err
		},
	}
	rootCmd.Flags().BoolVar(&debug, "debug", false, "launch the interactive step debugger instead of running freely")
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		if exitCode == exitOK {
			exitCode = exitUsage
		}
		fmt.Fprintln(os.Stderr, "lc3vm:", err)
	}
	return exitCode
}

func execute(images []string, debug bool, sugar *zap.SugaredLogger) (int, error) {
	term, err := console.NewTerminal()
	if err != nil {
		return exitLoadError, fmt.Errorf("acquire terminal: %w", err)
	}
	defer term.Close()

	m := vm.New(term)
	for _, path := range images {
		sugar.Infow("loading image", "path", path)
		if err := m.LoadImage(path); err != nil {
			return exitLoadError, err
		}
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, syscall.SIGINT)
	done := make(chan error, 1)

	go func() {
		if debug {
			done <- m.Debug()
			return
		}
		done <- m.Run()
	}()

	select {
	case <-interrupted:
		sugar.Infow("interrupted")
		return exitInterrupt, nil
	case err := <-done:
		signal.Stop(interrupted)
		if err != nil {
			var fe *vm.FatalExecError
			if errors.As(err, &fe) {
				sugar.Errorw("fatal execution fault", "opcode", fe.Opcode, "pc", fe.PC)
			}
			return exitLoadError, err
		}
		return exitOK, nil
	}
}
