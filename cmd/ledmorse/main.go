package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/ivlev/ledmorse/internal/batch"
	"github.com/ivlev/ledmorse/internal/config"
	"github.com/ivlev/ledmorse/internal/matrixgen"
	"github.com/ivlev/ledmorse/internal/morse"
	"github.com/ivlev/ledmorse/internal/pipeline"
	"github.com/ivlev/ledmorse/internal/preview"
	"github.com/ivlev/ledmorse/internal/profile"
	"github.com/ivlev/ledmorse/internal/source"
	"github.com/ivlev/ledmorse/internal/system"
)

func main() {
	system.InitResourceLimits()

	gammaPtr := flag.Float64("gamma", 0.4, "Gamma correction before classification (<1.0 darkens over-exposed LEDs)")
	rowsPtr := flag.Int("rows", 16, "Logical grid rows")
	wordsPtr := flag.Int("words", 2, "Morse words (slots) per row")
	slotPtr := flag.Int("slot-width", 8, "Cells per slot")
	profilePtr := flag.String("profile", "", "Path to a YAML tuning profile")
	saveProfilePtr := flag.String("save-profile", "", "Write the effective tuning to a YAML profile and exit")
	dpiPtr := flag.Int("dpi", 150, "Rasterization DPI for PDF sources")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel decode workers for multi-frame sources")
	emitUnknownPtr := flag.Bool("emit-unknown", false, "Render unrecognized sequences as '?' instead of dropping them")
	previewPtr := flag.Bool("preview", false, "Render the classified grid to the terminal")
	statsPtr := flag.Bool("stats", false, "Print a performance report after the run")
	livePtr := flag.Bool("live", false, "Decode a live MJPEG stream instead of a file")
	cameraPtr := flag.String("camera", "/dev/video0", "Capture device for -live ('-' reads MJPEG from stdin)")
	widthPtr := flag.Int("width", 640, "Capture width for -live")
	heightPtr := flag.Int("height", 480, "Capture height for -live")
	fpsPtr := flag.Int("fps", 10, "Capture frame rate for -live")
	selftestPtr := flag.String("selftest", "", "Encode the given message to a synthetic matrix and decode it back")

	flag.Parse()

	cfg := config.Default()
	if *profilePtr != "" {
		p, err := profile.Read(*profilePtr)
		if err != nil {
			log.Fatalf("[-] Profile error: %v", err)
		}
		p.Apply(cfg)
		fmt.Printf("[*] Using tuning profile: %s\n", *profilePtr)
	} else {
		cfg.Gamma = *gammaPtr
		cfg.Grid = config.GridLayout{Rows: *rowsPtr, WordsPerRow: *wordsPtr, SlotWidth: *slotPtr}
	}
	cfg.EmitUnknown = *emitUnknownPtr
	cfg.DPI = *dpiPtr
	cfg.Workers = *workersPtr
	cfg.FPS = *fpsPtr
	cfg.ShowStats = *statsPtr

	if *saveProfilePtr != "" {
		if err := cfg.Validate(); err != nil {
			log.Fatalf("[-] Configuration error: %v", err)
		}
		if err := profile.Write(profile.FromConfig(cfg), *saveProfilePtr); err != nil {
			log.Fatalf("[-] Could not write profile: %v", err)
		}
		fmt.Printf("[+++] Profile saved: %s\n", *saveProfilePtr)
		return
	}

	dec, err := pipeline.New(cfg)
	if err != nil {
		log.Fatalf("[-] Configuration error: %v", err)
	}

	switch {
	case *selftestPtr != "":
		runSelftest(dec, cfg, *selftestPtr)
	case *livePtr:
		runLive(dec, cfg, *cameraPtr, *widthPtr, *heightPtr, *previewPtr)
	default:
		runBatch(dec, cfg, flag.Arg(0), *previewPtr)
	}
}

func runBatch(dec *pipeline.Decoder, cfg *config.Config, inputPath string, showPreview bool) {
	if inputPath == "" {
		latest, err := system.FindLatestFrameFile("input")
		if err != nil {
			log.Fatalf("[-] Error: %v. Pass an image/PDF path or put one in input/", err)
		}
		inputPath = latest
		fmt.Printf("[*] Selected input: %s\n", inputPath)
	}
	cfg.InputPath = inputPath

	src, err := source.Open(inputPath)
	if err != nil {
		log.Fatalf("[-] Source error: %v", err)
	}
	defer src.Close()

	stats := system.NewRunStats()

	runner := &batch.Runner{Source: src, Decoder: dec, DPI: cfg.DPI, Workers: cfg.Workers}
	results, err := runner.Run(context.Background())
	if err != nil {
		log.Fatalf("[-] Decode error: %v", err)
	}

	for _, res := range results {
		if len(results) > 1 {
			fmt.Printf("--- Frame %d ---\n", res.Index+1)
		}
		printSequences(os.Stdout, res.Sequences)
		fmt.Printf("[+] Message: %q\n", res.Text)

		if showPreview {
			img, err := src.RenderFrame(res.Index, cfg.DPI)
			if err == nil {
				preview.NewRenderer(os.Stdout).Draw(dec.Symbols(img))
			}
		}

		stats.Frames++
		if res.Text != "" {
			stats.Emissions++
		}
	}

	if cfg.ShowStats {
		stats.Report()
	}
}

func runLive(dec *pipeline.Decoder, cfg *config.Config, device string, width, height int, showPreview bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var frames <-chan source.Frame
	if device == "-" {
		frames = source.NewMJPEGStream(os.Stdin).Frames(ctx)
	} else {
		cam, err := source.OpenCamera(ctx, device, width, height, cfg.FPS)
		if err != nil {
			log.Fatalf("[-] Camera error: %v", err)
		}
		defer cam.Close()
		frames = cam.Frames()
		fmt.Printf("[*] Capturing %s at %dx%d, %d FPS\n", device, width, height, cfg.FPS)
	}

	renderer := preview.NewRenderer(os.Stdout)
	if showPreview {
		renderer.ShowCursor(false)
		defer renderer.ShowCursor(true)
	}

	stats := system.NewRunStats()
	firstPreview := true

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n[*] Capture stopped")
			if cfg.ShowStats {
				stats.Report()
			}
			return
		case frame, ok := <-frames:
			if !ok {
				fmt.Println("[*] End of stream")
				if cfg.ShowStats {
					stats.Report()
				}
				return
			}
			if frame.Err != nil {
				log.Printf("[!] Stream error: %v", frame.Err)
				continue
			}

			stats.Frames++
			if res := dec.DecodeStabilized(frame.Image); res != nil {
				stats.Emissions++
				printSequences(os.Stdout, res.Sequences)
				fmt.Printf("[%s] %q\n", res.Timestamp.Format("15:04:05.000"), res.Text)
			}

			if showPreview {
				rows := dec.Symbols(frame.Image)
				if firstPreview {
					renderer.Draw(rows)
					firstPreview = false
				} else {
					renderer.Redraw(rows)
				}
			}
		}
	}
}

func runSelftest(dec *pipeline.Decoder, cfg *config.Config, message string) {
	img, err := matrixgen.Generate(message, cfg.Grid, 20)
	if err != nil {
		log.Fatalf("[-] Selftest encode error: %v", err)
	}

	sequences, text := dec.Decode(img)
	printSequences(os.Stdout, sequences)
	fmt.Printf("[*] Encoded: %q\n", strings.ToUpper(message))
	fmt.Printf("[*] Decoded: %q\n", text)

	if text == strings.TrimSpace(strings.ToUpper(message)) {
		fmt.Println("[+++] Selftest passed")
		return
	}
	log.Fatalf("[-] Selftest failed: round trip mismatch")
}

// printSequences lists every slot, blank ones included, so the numbering
// always covers the full grid.
func printSequences(w io.Writer, sequences []string) {
	for i, seq := range sequences {
		fmt.Fprintf(w, "%02d: %-9s -> %s\n", i+1, seq, decodeToken(seq))
	}
}

func decodeToken(seq string) string {
	if seq == "" {
		return `" "`
	}
	return fmt.Sprintf("%q", morse.Translate(seq))
}
