package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	openmusic "github.com/sosehq/openmusic-go"
	"github.com/sosehq/openmusic-go/internal/audio"
	"github.com/sosehq/openmusic-go/internal/server"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "openmusic",
	Short: "Rule-based composer and additive synthesizer",
	Long: `openmusic turns a plain text description into a rendered piece of
music: keyword analysis picks style, scale, tempo and meter, rule tables
compose a melody over a chord bed, and an additive synthesizer renders
everything to audio.`,
	Version: version,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a composition to a WAV file",
	Long: `Render a composition described in plain text.

Examples:
  openmusic render -d "upbeat jazz with piano" -o jazz.wav
  openmusic render -d "sad waltz" -t 30 --seed 7 --midi-out waltz.mid
  openmusic render -d "ambient drone" -s ambient --score-out drone.yaml`,
	RunE: runRender,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the three showcase pieces",
	Long: `Render three demonstration pieces (classical, jazz and electronic)
into a directory, 15 seconds each.

Example:
  openmusic demo --dir generated_music_demos`,
	RunE: runDemo,
}

var playCmd = &cobra.Command{
	Use:   "play [description]",
	Short: "Render a composition and play it",
	Long: `Render a composition and play it through the default audio device.

Examples:
  openmusic play "fast electronic dance track"
  openmusic play "folk tune" -t 20 --seed 3`,
	Args: cobra.ArbitraryArgs,
	RunE: runPlay,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long: `Start the web interface for generating compositions in the browser.

Example:
  openmusic serve --port 8080`,
	RunE: runServe,
}

var (
	// render/play flags
	description string
	duration    float64
	styleName   string
	seed        int64
	sampleRate  int
	outputPath  string
	pcm16       bool
	midiOut     string
	scoreOut    string

	// demo flags
	demoDir string

	// serve flags
	servePort int
)

func init() {
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)

	renderCmd.Flags().StringVarP(&description, "description", "d", "", "What to compose (keywords steer style, mood, pace and meter)")
	renderCmd.Flags().Float64VarP(&duration, "duration", "t", 10, "Length in seconds (clamped to 600)")
	renderCmd.Flags().StringVarP(&styleName, "style", "s", "auto", "Style (auto, classical, jazz, electronic, ambient, rock, folk, world, experimental)")
	renderCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = from the clock)")
	renderCmd.Flags().IntVar(&sampleRate, "rate", openmusic.DefaultSampleRate, "Sample rate in Hz")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "composition.wav", "Output WAV path")
	renderCmd.Flags().BoolVar(&pcm16, "pcm16", false, "Write 16-bit integer PCM instead of float32")
	renderCmd.Flags().StringVar(&midiOut, "midi-out", "", "Also save the score as a MIDI file")
	renderCmd.Flags().StringVar(&scoreOut, "score-out", "", "Also save the score as YAML")

	demoCmd.Flags().StringVar(&demoDir, "dir", "generated_music_demos", "Output directory")
	demoCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = from the clock)")
	demoCmd.Flags().IntVar(&sampleRate, "rate", openmusic.DefaultSampleRate, "Sample rate in Hz")

	playCmd.Flags().Float64VarP(&duration, "duration", "t", 10, "Length in seconds")
	playCmd.Flags().StringVarP(&styleName, "style", "s", "auto", "Style")
	playCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = from the clock)")

	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().IntVar(&sampleRate, "rate", openmusic.DefaultSampleRate, "Sample rate in Hz")
}

func newGenerator() (*openmusic.Generator, error) {
	opts := []openmusic.Option{}
	if seed != 0 {
		opts = append(opts, openmusic.WithSeed(seed))
	}
	return openmusic.NewGenerator(sampleRate, opts...)
}

func parseStyleArg() (openmusic.Style, error) {
	style, ok := openmusic.ParseStyle(styleName)
	if !ok {
		return style, fmt.Errorf("unknown style %q", styleName)
	}
	return style, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	style, err := parseStyleArg()
	if err != nil {
		return err
	}
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	started := time.Now()
	comp, err := gen.Generate(description, duration, style)
	if err != nil {
		return err
	}
	printComposition(comp, time.Since(started))

	wav := comp.WAV()
	if pcm16 {
		wav = comp.WAVPCM16()
	}
	if err := os.WriteFile(outputPath, wav, 0644); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	fmt.Printf("Saved audio: %s\n", outputPath)

	if midiOut != "" {
		data, err := comp.MIDI()
		if err != nil {
			return err
		}
		if err := os.WriteFile(midiOut, data, 0644); err != nil {
			return fmt.Errorf("write midi: %w", err)
		}
		fmt.Printf("Saved MIDI: %s\n", midiOut)
	}
	if scoreOut != "" {
		data, err := comp.ScoreYAML()
		if err != nil {
			return err
		}
		if err := os.WriteFile(scoreOut, data, 0644); err != nil {
			return fmt.Errorf("write score: %w", err)
		}
		fmt.Printf("Saved score: %s\n", scoreOut)
	}
	return nil
}

// demoPieces are the three showcase compositions: one per flagship style,
// fifteen seconds each.
var demoPieces = []struct {
	file        string
	description string
	style       openmusic.Style
}{
	{
		file:        "piece1_classical_symphony.wav",
		description: "classical symphony movement in D major with strings and piano, moderate tempo, complex harmonies",
		style:       openmusic.StyleClassical,
	},
	{
		file:        "piece2_jazz_fusion.wav",
		description: "jazz fusion improvisation in Bb minor with brass and piano, upbeat tempo, complex chord progressions",
		style:       openmusic.StyleJazz,
	},
	{
		file:        "piece3_electronic_ambient.wav",
		description: "electronic ambient soundscape in F# dorian with synthesizer pads, slow tempo, atmospheric effects, complex time signature",
		style:       openmusic.StyleElectronic,
	},
}

func runDemo(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(demoDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	for i, piece := range demoPieces {
		fmt.Printf("[%d/%d] %s\n", i+1, len(demoPieces), piece.description)
		comp, err := gen.Generate(piece.description, 15, piece.style)
		if err != nil {
			return err
		}
		printComposition(comp, 0)
		path := filepath.Join(demoDir, piece.file)
		if err := os.WriteFile(path, comp.WAV(), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Printf("Saved: %s\n\n", path)
	}
	fmt.Printf("All pieces saved in %s/\n", demoDir)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	description = strings.Join(args, " ")
	style, err := parseStyleArg()
	if err != nil {
		return err
	}
	sampleRate = openmusic.DefaultSampleRate
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	comp, err := gen.Generate(description, duration, style)
	if err != nil {
		return err
	}
	printComposition(comp, 0)

	player, err := audio.NewPlayer(comp.SampleRate, comp.Samples)
	if err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}
	defer player.Stop()

	player.Play()
	fmt.Printf("Playing %.1fs...\n", comp.Duration)
	for player.IsPlaying() {
		time.Sleep(100 * time.Millisecond)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := server.New(server.Config{
		Port:       servePort,
		SampleRate: sampleRate,
	})
	if err != nil {
		return err
	}
	return s.Run()
}

func printComposition(comp *openmusic.Composition, elapsed time.Duration) {
	fmt.Printf("  style: %s  scale: %s  tempo: %d bpm  meter: %s\n",
		comp.Style, comp.Scale, comp.Tempo, comp.TimeSignature)
	fmt.Printf("  notes: %d  chords: %d  duration: %.1fs",
		len(comp.Notes), len(comp.Harmony), comp.Duration)
	if elapsed > 0 {
		fmt.Printf("  rendered in %s", elapsed.Round(time.Millisecond))
	}
	fmt.Println()
}
