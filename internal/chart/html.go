package chart

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/bar_chart.html"))

const (
	plotHeight = 300
	barWidth   = 48
	barGap     = 24
	marginLeft = 24
	marginTop  = 40
)

// HTMLRenderer writes a standalone HTML page containing an SVG bar chart.
type HTMLRenderer struct {
	path   string
	prefix string
	// Written is called with the output path after each successful render.
	Written func(path string)
}

func NewHTMLRenderer(path, prefix string) *HTMLRenderer {
	return &HTMLRenderer{path: path, prefix: prefix}
}

type svgBar struct {
	X, Y, Width, Height int
	LabelX, LabelY      int
	ValueY              int
	Label               string
	Value               string
}

type pageData struct {
	Title      string
	Width      int
	Height     int
	AxisY      int
	Bars       []svgBar
	XAxisLabel string
	YAxisLabel string
	BarColor   string
}

func (r *HTMLRenderer) Render(title string, bars []Bar) error {
	data := layout(title, bars, r.prefix)

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "bar_chart", data); err != nil {
		return fmt.Errorf("render chart template: %w", err)
	}

	// A failed write never leaves half a page at r.path.
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".chart-*.html")
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write chart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("move chart file into place: %w", err)
	}

	if r.Written != nil {
		r.Written(r.path)
	}
	return nil
}

func layout(title string, bars []Bar, prefix string) pageData {
	max := maxValue(bars)
	axisY := marginTop + plotHeight

	out := make([]svgBar, 0, len(bars))
	for i, b := range bars {
		h := scale(b.Value, max, plotHeight)
		x := marginLeft + barGap + i*(barWidth+barGap)
		out = append(out, svgBar{
			X:      x,
			Y:      axisY - h,
			Width:  barWidth,
			Height: h,
			LabelX: x + barWidth/2,
			LabelY: axisY + 18,
			ValueY: axisY - h - 6,
			Label:  b.Label,
			Value:  prefix + b.Value.StringFixed(2),
		})
	}

	return pageData{
		Title:      title,
		Width:      marginLeft + barGap + len(bars)*(barWidth+barGap) + marginLeft,
		Height:     axisY + 60,
		AxisY:      axisY,
		Bars:       out,
		XAxisLabel: "Month",
		YAxisLabel: "Total Spent",
		BarColor:   "pink",
	}
}
