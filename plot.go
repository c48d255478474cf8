package regression

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/keonwoo98/ft-linear-regression/dataset"
	"github.com/keonwoo98/ft-linear-regression/models"
)

// ScatterRegression generates an echart chart plotting the training data
// repartition with the fitted regression line overlaid on the same mileage
// axis. With the untrained (0, 0) parameters only the data scatter is
// meaningful.
func ScatterRegression(td *dataset.Dataset, theta0, theta1 float64) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Price vs Mileage",
			},
		),
	)

	idx := make([]int, td.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return td.Mileages[idx[i]] < td.Mileages[idx[j]]
	})

	xAxis := make([]float64, 0, td.Len())
	scatterData := make([]opts.ScatterData, 0, td.Len())
	lineData := make([]opts.LineData, 0, td.Len())
	for _, i := range idx {
		xAxis = append(xAxis, td.Mileages[i])
		scatterData = append(scatterData, opts.ScatterData{Value: td.Prices[i]})
		lineData = append(lineData, opts.LineData{Value: models.Estimate(td.Mileages[i], theta0, theta1)})
	}

	scatter.SetXAxis(xAxis).
		AddSeries("Data", scatterData)

	line := charts.NewLine()
	line.SetXAxis(xAxis).
		AddSeries("Regression", lineData)
	scatter.Overlap(line)

	return scatter
}

// LineCostHistory generates an echart line chart of the per-iteration cost
// trace recorded during gradient descent.
func LineCostHistory(costHistory []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: "Cost vs Iterations",
			},
		),
	)

	xAxis := make([]int, 0, len(costHistory))
	lineData := make([]opts.LineData, 0, len(costHistory))
	for i, cost := range costHistory {
		xAxis = append(xAxis, i)
		lineData = append(lineData, opts.LineData{Value: cost})
	}

	line.SetXAxis(xAxis).
		AddSeries("Cost", lineData)
	return line
}

// PlotFit uses the Apache Echarts library to generate an html file showing the
// training data with the fitted regression line and the cost convergence of
// the last fit.
func (r *Regressor) PlotFit(path string) error {
	td := r.fitTrainingData
	if td == nil {
		return fmt.Errorf("no training data to plot, %w", ErrUntrainedModel)
	}

	page := components.NewPage()
	page.AddCharts(
		ScatterRegression(td, r.theta0, r.theta1),
		LineCostHistory(r.costHistory),
	)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return page.Render(io.MultiWriter(file))
}
