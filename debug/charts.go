package debug

import (
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	Record
}

// Render 格式化（HTML 页面：函数值曲线 + 每个变量一条敏感度曲线）
func (c *Charts) Render(w io.Writer) error {
	// 初始化界面
	lineV := charts.NewLine()
	lineV.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: "函数值随采样轴变化曲线",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	lineS := charts.NewLine()
	lineS.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "敏感度曲线",
			Subtitle: "对各命名变量的一阶偏导随采样轴变化曲线",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	// 处理数据
	{
		// 函数值信息
		{
			lineV.SetXAxis(c.Axis)
			itemsV := make([]opts.LineData, len(c.Axis))
			for i, v := range c.Value {
				itemsV[i].Value = v
			}
			seriesV := []charts.SingleSeries{{
				Name: "value",
				Data: itemsV,
				Type: types.ChartLine,
			}}
			seriesV[0].InitSeriesDefaultOpts(lineV.BaseConfiguration)
			lineV.MultiSeries = seriesV
		}
		// 敏感度信息
		{
			lineS.SetXAxis(c.Axis)
			itemsS := make([][]opts.LineData, len(c.Labels))
			seriesS := make([]charts.SingleSeries, len(c.Labels))
			for i, label := range c.Labels {
				itemsS[i] = make([]opts.LineData, len(c.Axis))
				seriesS[i] = charts.SingleSeries{
					Name: label,
					Data: itemsS[i],
					Type: types.ChartLine,
				}
				seriesS[i].InitSeriesDefaultOpts(lineS.BaseConfiguration)
			}
			for i, grad := range c.Sensitivity {
				for x, t := range grad {
					itemsS[x][i].Value = t
				}
			}
			lineS.MultiSeries = seriesS
		}
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		lineV,
		lineS,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	c.Render(w)
}

// ListenAndServe 启动调试页面服务
func (c *Charts) ListenAndServe(addr string) error {
	http.HandleFunc("/", c.Handler)
	return http.ListenAndServe(addr, nil)
}

func (c *Charts) Error(err error) { log.Println(err) }
