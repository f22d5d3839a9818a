package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/bodgit/beadgrid"
	"github.com/bodgit/beadgrid/editor"
	"github.com/bodgit/beadgrid/palette"
	"github.com/bodgit/beadgrid/pixelize"
	"github.com/bodgit/beadgrid/project"
	"github.com/bodgit/beadgrid/quantize"
	"github.com/bodgit/beadgrid/render"
	"github.com/urfave/cli/v2"
)

const defaultDB = "beadgrid.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func open(c *cli.Context) (*beadgrid.BeadGrid, error) {
	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return beadgrid.New(c.String("db"), logger)
}

func pixelizeFlags() []cli.Flag {
	d := pixelize.DefaultConfig()
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Value: d.Width,
			Usage: "grid width in beads",
		},
		&cli.IntFlag{
			Name:  "height",
			Usage: "grid height in beads, 0 keeps the aspect ratio of the image",
		},
		&cli.IntFlag{
			Name:  "colors",
			Value: d.ColorCount,
			Usage: "maximum number of colours",
		},
		&cli.StringFlag{
			Name:    "brand",
			EnvVars: []string{"BEADGRID_BRAND"},
			Value:   palette.Perler.String(),
			Usage:   "bead brand",
		},
		&cli.StringFlag{
			Name:  "method",
			Value: d.Method.String(),
			Usage: "colour reduction method",
		},
	}
}

func pixelizeConfig(c *cli.Context) (project.Config, error) {
	brand, err := palette.ParseBrand(c.String("brand"))
	if err != nil {
		return project.Config{}, err
	}
	method, err := quantize.ParseMethod(c.String("method"))
	if err != nil {
		return project.Config{}, err
	}
	return project.Config{
		Config: pixelize.Config{
			Width:      c.Int("width"),
			Height:     c.Int("height"),
			ColorCount: c.Int("colors"),
			Method:     method,
		},
		Brand: brand,
	}, nil
}

func renderOptions(c *cli.Context) render.Options {
	return render.Options{
		CellSize:  c.Int("cell"),
		GridLines: c.Bool("grid-lines"),
	}
}

func renderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "cell",
			Value: render.DefaultCellSize,
			Usage: "size of each bead in pixels",
		},
		&cli.BoolFlag{
			Name:  "grid-lines",
			Usage: "draw grid lines",
		},
	}
}

func editGrid(c *cli.Context, s *editor.Session) error {
	if size := c.String("resize"); size != "" {
		w, h, err := parseSize(size)
		if err != nil {
			return err
		}
		if _, err := s.Resize(w, h); err != nil {
			return err
		}
	}

	for _, v := range c.StringSlice("set") {
		e, err := parseCellEdit(v)
		if err != nil {
			return err
		}
		s.Set(e.x, e.y, e.id)
	}

	for _, v := range c.StringSlice("fill") {
		e, err := parseCellEdit(v)
		if err != nil {
			return err
		}
		s.Fill(e.x, e.y, e.id)
	}

	for i := 0; i < c.Int("undo"); i++ {
		if !s.Undo() {
			break
		}
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "beadgrid"
	app.Usage = "Bead pattern designer"
	app.Version = "1.0.0"

	// --set and --fill values contain commas
	app.DisableSliceFlagSeparator = true

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"BEADGRID_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "import",
			Usage:     "Import a bead brand colour library",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				if err := b.ImportLibrary(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "pixelize",
			Usage:     "Create a project from an image",
			ArgsUsage: "IMAGE",
			Flags: append(pixelizeFlags(), append([]cli.Flag{
				&cli.StringFlag{
					Name:  "name",
					Usage: "project name, defaults to the image file name",
				},
				&cli.StringFlag{
					Name:  "png",
					Usage: "also render the pattern to this file",
				},
			}, renderFlags()...)...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := pixelizeConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				file := c.Args().First()
				name := c.String("name")
				if name == "" {
					name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
				}

				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				if _, err := b.Pixelize(file, name, cfg); err != nil {
					return cli.Exit(err, 1)
				}

				if out := c.String("png"); out != "" {
					if err := b.Render(name, out, renderOptions(c)); err != nil {
						return cli.Exit(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:      "batch",
			Usage:     "Create projects from every image in a directory",
			ArgsUsage: "DIRECTORY",
			Flags:     pixelizeFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := pixelizeConfig(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				if err := b.Batch(c.Args().First(), cfg); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Write a project bundle to a file",
			ArgsUsage: "NAME FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				if err := b.Export(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "load",
			Usage:     "Read a project bundle from a file",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				if _, err := b.Load(c.Args().First()); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "edit",
			Usage:       "Edit a project",
			Description: "Edits are applied in the order resize, set, fill and then undo.",
			ArgsUsage:   "NAME",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{
					Name:  "set",
					Usage: "set a single bead, as X,Y,COLOR",
				},
				&cli.StringSliceFlag{
					Name:  "fill",
					Usage: "flood fill from a bead, as X,Y,COLOR",
				},
				&cli.StringFlag{
					Name:  "resize",
					Usage: "resample the grid, as WIDTHxHEIGHT",
				},
				&cli.IntFlag{
					Name:  "undo",
					Usage: "undo this many of the above edits",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				if err := b.Edit(c.Args().First(), func(s *editor.Session) error {
					return editGrid(c, s)
				}); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "render",
			Usage:     "Draw a project as a PNG image",
			ArgsUsage: "NAME FILE",
			Flags:     renderFlags(),
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				if err := b.Render(c.Args().Get(0), c.Args().Get(1), renderOptions(c)); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "count",
			Usage:     "List the beads needed for a project",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				counts, err := b.Count(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
				for _, n := range counts {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", n.ID, n.Name, n.Hex, n.Count)
				}

				return w.Flush()
			},
		},
		{
			Name:  "list",
			Usage: "List saved projects",
			Action: func(c *cli.Context) error {
				b, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer b.Close()

				names, err := b.Projects()
				if err != nil {
					return cli.Exit(err, 1)
				}

				for _, name := range names {
					fmt.Println(name)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
