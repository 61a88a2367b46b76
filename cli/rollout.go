package cli

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/samuelfneumann/cabdriver/environment/wrappers"
	"github.com/samuelfneumann/cabdriver/experiment"
	"github.com/samuelfneumann/cabdriver/experiment/tracker"
	"github.com/samuelfneumann/cabdriver/utils/progressbar"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

// Rollout runs episodes of a fixed policy and reports the mean and
// standard deviation of the episodic returns. If saveDir is not empty,
// the per-episode data is saved there. If averageReward is positive,
// rewards are made differential with respect to a reward rate
// estimated with that learning rate.
func Rollout(cmd *cobra.Command, episodes int, policy experiment.PolicyName,
	saveDir string, progress bool, averageReward float64) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	cab, _, err := c.Create(seed)
	if err != nil {
		return err
	}
	var env experiment.Env = cab
	var avg *wrappers.AverageReward
	if averageReward > 0 {
		if avg, _, err = wrappers.NewAverageReward(cab, 0,
			averageReward); err != nil {
			return err
		}
		env = avg
	}
	p, err := experiment.NewPolicy(policy, seed+3)
	if err != nil {
		return err
	}

	returns := tracker.NewReturn(filepath.Join(saveDir, "returns.bin"))
	lengths := tracker.NewEpisodeLength(filepath.Join(saveDir, "lengths.bin"))
	hours := tracker.NewEpisodeHours(filepath.Join(saveDir, "hours.bin"))
	exp := experiment.NewOnline(env, p, 0, returns, lengths, hours)

	log.Printf("running %d episodes of the %v policy on %v", episodes, policy,
		env)
	var bar *progressbar.ProgressBar
	if progress {
		bar = progressbar.New(cmd.ErrOrStderr(), 40, episodes)
	}
	for i := 0; i < episodes; i++ {
		if _, err := exp.RunEpisode(); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	mean, std := stat.MeanStdDev(returns.Returns(), nil)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "episodes: %d\n", len(returns.Returns()))
	fmt.Fprintf(out, "return: %.2f ± %.2f\n", mean, std)
	fmt.Fprintf(out, "decisions: %.2f\n", stat.Mean(toFloats(lengths.Lengths()),
		nil))
	fmt.Fprintf(out, "hours: %.2f\n", stat.Mean(toFloats(hours.Hours()), nil))
	if avg != nil {
		fmt.Fprintf(out, "reward rate: %.2f/h\n", avg.Rate())
	}

	if saveDir == "" {
		return nil
	}
	if err := exp.Save(); err != nil {
		return err
	}
	log.Printf("saved episode data to %v", saveDir)
	return nil
}

// RolloutCommand returns the command which runs a fixed policy
func RolloutCommand() *cobra.Command {
	var episodes int
	var policy string
	var saveDir string
	var progress bool
	var averageReward float64

	cmd := &cobra.Command{
		Use:   "rollout",
		Short: "Run a fixed policy and report its episodic returns",
		RunE: func(cmd *cobra.Command, args []string) error {
			if episodes < 1 {
				return fmt.Errorf("need at least one episode, have %d",
					episodes)
			}
			return Rollout(cmd, episodes, experiment.PolicyName(policy),
				saveDir, progress, averageReward)
		},
	}
	cmd.PersistentFlags().IntVarP(&episodes, "episodes", "e", 10,
		"Number of episodes to run")
	cmd.PersistentFlags().StringVarP(&policy, "policy", "p",
		string(experiment.GreedyPolicy), "Policy to run: random or greedy")
	cmd.PersistentFlags().StringVar(&saveDir, "save", "",
		"Directory to save per-episode data in")
	cmd.PersistentFlags().BoolVar(&progress, "progress", false,
		"Display a progress bar")
	cmd.PersistentFlags().Float64Var(&averageReward, "average-reward", 0,
		"Learning rate of the reward rate estimate, 0 disables "+
			"differential rewards")
	return cmd
}

func toFloats(ints []int) []float64 {
	floats := make([]float64, len(ints))
	for i, v := range ints {
		floats[i] = float64(v)
	}
	return floats
}
