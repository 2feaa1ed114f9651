package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/przecze/rooms-of-roaming/pkg/chunkexport"
	"github.com/przecze/rooms-of-roaming/pkg/chunkgen"
	"github.com/przecze/rooms-of-roaming/pkg/worldcfg"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file (optional; defaults built in if omitted)")
	outputDir  = flag.String("output", ".", "Output directory for exported files")
	format     = flag.String("format", "text", "Export format: text, json, svg, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the world seed from config (0 = use config seed)")
	cx         = flag.Int("cx", 0, "Chunk X coordinate")
	cy         = flag.Int("cy", 0, "Chunk Y coordinate")
	debug      = flag.Bool("debug", false, "Include debug metadata (wavelengths, tablets, timings) in the text export")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("chunkgen version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	validFormats := map[string]bool{"text": true, "json": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: text, json, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := worldcfg.Default()
	worldSeed := cfg.WorldSeed

	if *configPath != "" {
		if *verbose {
			fmt.Printf("Loading configuration from %s\n", *configPath)
		}
		loaded, err := worldcfg.LoadConfig(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		worldSeed = cfg.WorldSeed
	}

	if *seedFlag != 0 {
		if *verbose {
			fmt.Printf("Overriding world seed from %d to %d\n", worldSeed, *seedFlag)
		}
		worldSeed = *seedFlag
	}

	if *verbose {
		fmt.Printf("World seed: %d\n", worldSeed)
		fmt.Printf("Chunk size: %d, rooms: %d-%d\n", cfg.ChunkSize, cfg.RoomsMin, cfg.RoomsMax)
		fmt.Printf("Requesting chunk (%d, %d)\n", *cx, *cy)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	facade := chunkgen.NewFacade(cfg, worldSeed)

	start := time.Now()
	chunk, elapsed, err := facade.GetChunk(*cx, *cy)
	if err != nil {
		return fmt.Errorf("chunk generation failed: %w", err)
	}
	wall := time.Since(start)

	if *verbose {
		fmt.Printf("Generated chunk (%d, %d) in %v (facade-reported %v)\n", chunk.CX, chunk.CY, wall, elapsed)
	}

	baseName := fmt.Sprintf("chunk_%d_%d_%d", worldSeed, *cx, *cy)

	if *format == "text" || *format == "all" {
		if err := exportText(chunk, baseName); err != nil {
			return err
		}
	}
	if *format == "json" || *format == "all" {
		if err := exportJSON(chunk, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(chunk, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated chunk (%d, %d), seed=%d\n", chunk.CX, chunk.CY, worldSeed)
	return nil
}

func exportText(chunk *chunkgen.Chunk, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".txt")
	if *verbose {
		fmt.Printf("Exporting text to %s\n", filename)
	}

	body := chunkexport.Text(chunk)
	if *debug {
		body = chunkexport.DebugText(chunk)
	}

	if err := os.WriteFile(filename, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to export text: %w", err)
	}
	return nil
}

func exportJSON(chunk *chunkgen.Chunk, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := chunkexport.SaveJSONToFile(chunk, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	return nil
}

func exportSVG(chunk *chunkgen.Chunk, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}

	opts := chunkexport.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Chunk (%d, %d)", chunk.CX, chunk.CY)
	if err := chunkexport.SaveSVGToFile(chunk, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	return nil
}

func printHelp() {
	fmt.Printf("chunkgen version %s\n\n", version)
	fmt.Println("Generates one deterministic chunk of the shared ASCII world.")
	fmt.Println("\nUsage:")
	fmt.Println("  chunkgen -cx <int> -cy <int> [options]")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file (defaults built in if omitted)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the world seed from config (0 = use config seed)")
	fmt.Println("  -cx int, -cy int")
	fmt.Println("        Chunk coordinates to generate (default 0, 0)")
	fmt.Println("  -debug")
	fmt.Println("        Include wavelengths/tablets/timings in the text export")
	fmt.Println("  -format string")
	fmt.Println("        Export format: text, json, svg, or all (default: text)")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for exported files (default: current directory)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  chunkgen -cx 3 -cy -2")
	fmt.Println("  chunkgen -config world.yaml -cx 0 -cy 0 -format all -debug")
}
