package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/valerio/brick4bit/brick/analysis"
	"github.com/valerio/brick4bit/brick/rom"
)

func main() {
	app := cli.NewApp()
	app.Name = "brickdisasm"
	app.Description = "Walks a brick4bit ROM image and writes a readable pseudocode listing"
	app.Usage = "brickdisasm [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM image",
			Value: "brickrom.bin",
		},
		cli.StringFlag{
			Name:  "m",
			Usage: "Path to write the raw reachability marks byte-dump (optional)",
		},
		cli.StringFlag{
			Name:  "o",
			Usage: "Path to write the decompiled pseudocode listing",
			Value: "decomp_out.c",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("brickdisasm exited with an error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	image, err := rom.Load(c.String("rom"))
	if err != nil {
		return err
	}

	report := analysis.Walk(image)

	if marksPath := c.String("m"); marksPath != "" {
		if err := os.WriteFile(marksPath, report.Marks[:], 0o644); err != nil {
			return err
		}
	}

	outputPath := c.String("o")
	if outputPath == "" {
		return nil
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	lines := analysis.Decompile(image, report)
	if err := analysis.WriteReport(f, image, report, lines); err != nil {
		return err
	}

	slog.Info("decompiled ROM", "rom", c.String("rom"), "output", outputPath, "instructions", len(lines))
	return nil
}
