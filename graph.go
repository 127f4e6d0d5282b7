// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package edges

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rescribe.xyz/edges/edge"
)

const xticknum = 16
const yticknum = 10

// ErrNoPixels is returned when there is nothing to draw a graph of
var ErrNoPixels = errors.New("No pixels to graph")

// createVLine creates a vertical line at a particular x value for a
// graph, reaching up to top
func createVLine(x float64, top float64, c drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x, x},
		YValues: []float64{0, top},
		Style: chart.Style{
			StrokeColor:     c,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// cutoffAnnotation labels the cutoff line with the proportion of
// pixels at or above it
func cutoffAnnotation(gray *image.Gray, cutoff uint8, top float64) chart.Value2 {
	return chart.Value2{
		Label:  fmt.Sprintf("%.1f%% >= %d", edge.Proportion(gray, cutoff)*100, cutoff),
		XValue: float64(cutoff),
		YValue: top,
	}
}

// Graph creates a histogram of the gray values in img, leaving out
// black pixels, which usually swamp everything else in an edge image
func Graph(img image.Image, title string, w io.Writer) error {
	return GraphOpts(img, title, edge.Cutoff, true, w)
}

// GraphOpts creates a histogram of the gray values in img, with a
// line marking cutoff. If skipblack is set and every pixel is black,
// ErrNoPixels is returned.
func GraphOpts(img image.Image, title string, cutoff uint8, skipblack bool, w io.Writer) error {
	gray, ok := img.(*image.Gray)
	if !ok {
		gray = edge.Grayscale(img)
	}
	hist := edge.Histogram(gray)

	start := 0
	if skipblack {
		start = 1
	}

	var xvalues, yvalues []float64
	var max, total int
	for v := start; v < len(hist); v++ {
		xvalues = append(xvalues, float64(v))
		yvalues = append(yvalues, float64(hist[v]))
		total += hist[v]
		if hist[v] > max {
			max = hist[v]
		}
	}
	if total == 0 {
		return ErrNoPixels
	}

	var xticks, yticks []chart.Tick
	for i := 0; i <= xticknum; i++ {
		n := float64(i*256) / xticknum
		if n > 255 {
			n = 255
		}
		xticks = append(xticks, chart.Tick{Value: n, Label: fmt.Sprintf("%.0f", n)})
	}
	for i := 0; i <= yticknum; i++ {
		n := float64(i*max) / yticknum
		yticks = append(yticks, chart.Tick{Value: n, Label: fmt.Sprintf("%.0f", n)})
	}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	cutoffSeries := createVLine(float64(cutoff), float64(max), chart.ColorRed)

	annotations := []chart.Value2{cutoffAnnotation(gray, cutoff, float64(max))}

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Intensity",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
			Ticks: xticks,
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: float64(max),
			},
			Ticks: yticks,
		},
		Series: []chart.Series{
			mainSeries,
			cutoffSeries,
			chart.AnnotationSeries{
				Annotations: annotations,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
