package main

import (
	"fmt"
	"math/rand"
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Belfegnar/CrystalAI/agent"
	"github.com/Belfegnar/CrystalAI/recording"
	"github.com/Belfegnar/CrystalAI/scheduling"
)

var simulateFlags struct {
	numAgents int
	duration  float64
	fps       float64
	seed      int64
	verbose   bool
	record    string
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a synthetic agent population against the scheduler",
	Long: `Simulate drives a population of decision makers with a ` +
		`fixed-step frame loop and reports how often their think and update ` +
		`commands fired.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateFlags.numAgents,
		"agents", 100, "number of agents to simulate")
	simulateCmd.Flags().Float64Var(&simulateFlags.duration,
		"duration", 10, "simulated seconds to run")
	simulateCmd.Flags().Float64Var(&simulateFlags.fps,
		"fps", 240, "frames per simulated second")
	simulateCmd.Flags().Int64Var(&simulateFlags.seed,
		"seed", 1, "seed for delay sampling")
	simulateCmd.Flags().BoolVar(&simulateFlags.verbose,
		"verbose", false, "log every firing")
	simulateCmd.Flags().StringVar(&simulateFlags.record,
		"record", "", "record firings into this SQLite database")

	rootCmd.AddCommand(simulateCmd)
}

type noopAI struct{}

func (noopAI) Select(_ agent.ContextProvider) {}

type staticProvider struct{}

func (staticProvider) Context() interface{} { return nil }

func runSimulate(_ *cobra.Command, _ []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if !simulateFlags.verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	rng := rand.New(rand.NewSource(simulateFlags.seed))
	sched := scheduling.NewScheduler(rng)

	if simulateFlags.verbose {
		hook := scheduling.NewCommandLogger(logger)
		sched.ThinkStream().AcceptHook(hook)
		sched.UpdateStream().AcceptHook(hook)
	}

	if simulateFlags.record != "" {
		recorder := recording.New(simulateFlags.record)
		hook := recording.NewFiringHook(recorder)
		sched.ThinkStream().AcceptHook(hook)
		sched.UpdateStream().AcceptHook(hook)
		defer recorder.Flush()
	}

	var thinkCount, updateCount atomic.Uint64

	makers := make([]*agent.DecisionMaker, 0, simulateFlags.numAgents)
	for i := 0; i < simulateFlags.numAgents; i++ {
		d, err := agent.NewDecisionMaker(
			noopAI{}, staticProvider{}, sched,
			agent.WithThinkAction(func() error {
				thinkCount.Add(1)
				return nil
			}),
			agent.WithUpdateAction(func() error {
				updateCount.Add(1)
				return nil
			}),
		)
		if err != nil {
			return fmt.Errorf("creating agent %d: %w", i, err)
		}

		// Spread the first think of each agent over one full period so the
		// population does not fire in lockstep.
		d.SetThinkInitDelayInterval(scheduling.NewInterval(
			scheduling.VTimeInSec(0), agent.DefaultThinkFreq.Period()))

		if err := d.Start(); err != nil {
			return fmt.Errorf("starting agent %d: %w", i, err)
		}
		makers = append(makers, d)
	}

	frameTime := scheduling.VTimeInSec(1.0 / simulateFlags.fps)
	numFrames := int(simulateFlags.duration * simulateFlags.fps)
	for frame := 1; frame <= numFrames; frame++ {
		now := scheduling.VTimeInSec(frame) * frameTime
		if err := sched.Tick(now); err != nil {
			// An action failure aborts the rest of the pass; the remaining
			// due commands fire on the next frame.
			logger.Warn().Err(err).
				Float64("time", float64(now)).
				Msg("frame aborted")
		}
	}

	for i, d := range makers {
		if err := d.Stop(); err != nil {
			return fmt.Errorf("stopping agent %d: %w", i, err)
		}
	}

	fmt.Printf("agents:        %d\n", simulateFlags.numAgents)
	fmt.Printf("simulated:     %.2fs at %.0f fps\n",
		simulateFlags.duration, simulateFlags.fps)
	fmt.Printf("think firings: %d\n", thinkCount.Load())
	fmt.Printf("update firings:%d\n", updateCount.Load())

	return nil
}
