// Command matchart builds a chart from a tabular dataset. It loads rows
// from a CSV file or a sqlite dataset store, runs the declarative
// aggregate/limit/sort pipeline, and writes an HTML (go-echarts) or image
// (gonum/plot) chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/osamashahatit/matchart-sub000/dataset"
	"github.com/osamashahatit/matchart-sub000/layout"
	"github.com/osamashahatit/matchart-sub000/pivot"
	"github.com/osamashahatit/matchart-sub000/render"
	"github.com/osamashahatit/matchart-sub000/yoy"
)

// Config holds all command line options.
type Config struct {
	CSVPath string
	DBPath  string
	Query   string
	Name    string // named dataset in the store
	SaveAs  string // save the loaded dataset under this name

	GroupBy string
	Value   string
	Agg     string
	Series  string

	Limit    string
	SortRows string
	SortCols string

	Chart        string // bar or line
	Variant      string
	Width        float64
	Space        float64
	Horizontal   bool
	RunningTotal bool

	YoYDate  string
	YoYYears string

	Title  string
	Output string
}

func main() {
	var config Config
	flag.StringVar(&config.CSVPath, "csv", "", "Path to CSV input (with header row)")
	flag.StringVar(&config.DBPath, "db", "", "Path to sqlite dataset store")
	flag.StringVar(&config.Query, "query", "", "SQL query against the store (with -db)")
	flag.StringVar(&config.Name, "dataset", "", "Named dataset to load from the store (with -db)")
	flag.StringVar(&config.SaveAs, "save-as", "", "Save the loaded dataset into the store under this name")
	flag.StringVar(&config.GroupBy, "group", "", "Grouping column (required)")
	flag.StringVar(&config.Value, "value", "", "Value column (required)")
	flag.StringVar(&config.Agg, "agg", "sum", "Aggregation function (sum, mean, count, min, max, median, first, last)")
	flag.StringVar(&config.Series, "series", "", "Series/legend column (optional)")
	flag.StringVar(&config.Limit, "limit", "", "Row limit, direction:count (e.g. top:5)")
	flag.StringVar(&config.SortRows, "sort-rows", "", "Row sort: asc|desc:label|value, or keys:a,b,c")
	flag.StringVar(&config.SortCols, "sort-cols", "", "Column sort: asc|desc:label|value, or keys:a,b,c")
	flag.StringVar(&config.Chart, "chart", "bar", "Chart type: bar or line")
	flag.StringVar(&config.Variant, "variant", "standard", "Bar variant: standard, stacked, or clustered")
	flag.Float64Var(&config.Width, "width", 0, "Bar (or cluster) width; 0 uses the default")
	flag.Float64Var(&config.Space, "space", 0, "Bar/segment spacing")
	flag.BoolVar(&config.Horizontal, "horizontal", false, "Horizontal orientation")
	flag.BoolVar(&config.RunningTotal, "running-total", false, "Cumulative sum per series (line charts)")
	flag.StringVar(&config.YoYDate, "yoy-date", "", "Date column for year-over-year mode")
	flag.StringVar(&config.YoYYears, "yoy-years", "", "Two years to compare, e.g. 2023,2024 (default: two most recent)")
	flag.StringVar(&config.Title, "title", "", "Chart title")
	flag.StringVar(&config.Output, "o", "chart.html", "Output path (.html for interactive, .png/.svg for static)")
	flag.Parse()

	if err := run(config); err != nil {
		log.Fatalf("matchart: %v", err)
	}
}

func run(config Config) error {
	if config.GroupBy == "" || config.Value == "" {
		return fmt.Errorf("-group and -value are required")
	}

	ds, err := loadDataset(config)
	if err != nil {
		return err
	}
	log.Printf("loaded %d rows", ds.Len())

	props, err := buildProps(config)
	if err != nil {
		return err
	}

	if config.YoYDate != "" {
		return runYoY(config, ds, props)
	}

	res, err := pivot.Run(ds, props)
	if err != nil {
		return err
	}
	log.Printf("pivot: %d rows x %d columns", res.Table.NumRows(), res.Table.NumCols())

	return writeChart(config, res)
}

func loadDataset(config Config) (*dataset.Dataset, error) {
	var ds *dataset.Dataset
	var err error

	switch {
	case config.CSVPath != "":
		ds, err = dataset.FromCSVFile(config.CSVPath)
	case config.DBPath != "":
		var store *dataset.Store
		store, err = dataset.OpenStore(config.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		if config.Query != "" {
			ds, err = store.Query(config.Query)
		} else if config.Name != "" {
			ds, err = store.Load(config.Name)
		} else {
			err = fmt.Errorf("-db requires -query or -dataset")
		}
	default:
		err = fmt.Errorf("one of -csv or -db is required")
	}
	if err != nil {
		return nil, err
	}

	if config.SaveAs != "" {
		if config.DBPath == "" {
			return nil, fmt.Errorf("-save-as requires -db")
		}
		store, err := dataset.OpenStore(config.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		id, err := store.Save(config.SaveAs, ds)
		if err != nil {
			return nil, err
		}
		log.Printf("saved dataset %q (%s)", config.SaveAs, id)
	}

	return ds, nil
}

func buildProps(config Config) (pivot.Props, error) {
	limit, err := parseLimit(config.Limit)
	if err != nil {
		return pivot.Props{}, err
	}
	rowSort, err := parseSort(config.SortRows)
	if err != nil {
		return pivot.Props{}, err
	}
	colSort, err := parseSort(config.SortCols)
	if err != nil {
		return pivot.Props{}, err
	}
	return pivot.Props{
		GroupBy:      config.GroupBy,
		Value:        config.Value,
		Series:       config.Series,
		Agg:          pivot.AggFunc(config.Agg),
		Limit:        limit,
		RowSort:      rowSort,
		ColSort:      colSort,
		RunningTotal: config.RunningTotal && config.Chart == "line",
	}, nil
}

func runYoY(config Config, ds *dataset.Dataset, props pivot.Props) error {
	years, err := parseYears(config.YoYYears)
	if err != nil {
		return err
	}
	res, err := yoy.Compute(ds, config.YoYDate, years, props)
	if err != nil {
		return err
	}

	log.Printf("year-over-year: %d vs %d", res.CurrentYear, res.PreviousYear)
	for _, r := range res.Ratios {
		log.Printf("  %-20s %+.2f%%", r.Key, r.Value*100)
	}

	// The aligned two-year pivot renders naturally as a clustered bar pair.
	out := &pivot.Result{Table: res.Table, Props: props}
	title := config.Title
	if title == "" {
		title = fmt.Sprintf("YoY %d vs %d", res.CurrentYear, res.PreviousYear)
	}
	spec := layout.BarSpec{Variant: layout.VariantClustered, Width: config.Width, Space: config.Space, Horizontal: config.Horizontal}
	return writeOutput(config.Output, title, out, spec, "bar")
}

func writeChart(config Config, res *pivot.Result) error {
	spec := layout.BarSpec{
		Variant:    layout.Variant(config.Variant),
		Width:      config.Width,
		Space:      config.Space,
		Horizontal: config.Horizontal,
	}
	return writeOutput(config.Output, config.Title, res, spec, config.Chart)
}

func writeOutput(path, title string, res *pivot.Result, spec layout.BarSpec, chart string) error {
	o := render.Options{Title: title}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".html" {
		switch chart {
		case "bar":
			err := render.SaveBarImage(path, res, spec, o)
			if err == nil {
				log.Printf("wrote %s", path)
			}
			return err
		case "line":
			err := render.SaveLineImage(path, res, o)
			if err == nil {
				log.Printf("wrote %s", path)
			}
			return err
		default:
			return fmt.Errorf("unknown chart type %q", chart)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	switch chart {
	case "bar":
		err = render.BarHTML(f, res, spec, o)
	case "line":
		err = render.LineHTML(f, res, o)
	default:
		return fmt.Errorf("unknown chart type %q", chart)
	}
	if err == nil {
		log.Printf("wrote %s", path)
	}
	return err
}
