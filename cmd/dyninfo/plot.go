package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func savePlot(filename string, rows []row, delta float64) error {
	p := plot.New()
	p.Title.Text = "Step response"
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = "output"
	p.Legend.Top = true

	for i, r := range rows {
		pts := make(plotter.XYs, len(r.response)+1)
		for j, y := range r.response {
			pts[j+1].X = float64(j+1) * delta
			pts[j+1].Y = y
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("%s: %w", r.name, err)
		}

		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(r.name, line)
	}

	target, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 1},
		{X: float64(len(rows[0].response)) * delta, Y: 1},
	})
	if err != nil {
		return err
	}

	target.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(target)

	return savePNG(p, 8, 5, filename)
}

func savePNG(p *plot.Plot, widthIn, heightIn float64, filename string) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory: %w", err)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}

	return writePNG(f, c)
}

// writePNG encodes c into w and closes w, reporting the first error.
func writePNG(w io.WriteCloser, c *vgimg.Canvas) error {
	bw := bufio.NewWriter(w)

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		w.Close()
		return fmt.Errorf("cannot write png: %w", err)
	}

	if err := bw.Flush(); err != nil {
		w.Close()
		return fmt.Errorf("cannot write png: %w", err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("cannot close png: %w", err)
	}

	return nil
}
