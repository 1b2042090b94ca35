// Package debug 将 Dual 计算结果渲染为可视化图表（调试与演示用）。
package debug

import (
	"encoding/json"
	"io"
	"log"

	"dual"
)

// Record 记录沿某轴采样的 Dual 序列
type Record struct {
	Title       string      // 图表标题
	Labels      []string    // 跟踪的变量标签列表（敏感度曲线，每个标签一条）
	Axis        []float64   // 采样轴（横坐标）
	Value       []float64   // 函数值列
	Sensitivity [][]float64 // 敏感度列：Sensitivity[i] 与 Labels 逐位对齐
}

// Init 初始化记录（清空历史数据，固定标签序列）
func (list *Record) Init(title string, labels []string) {
	list.Title = title
	list.Labels = append([]string{}, labels...)
	list.Axis = nil
	list.Value = nil
	list.Sensitivity = nil
}

// Update 记录一个采样点
// 梯度按 Labels 对齐抽取，未跟踪的标签敏感度记为 0
func (list *Record) Update(x float64, d *dual.Dual) {
	list.Axis = append(list.Axis, x)
	list.Value = append(list.Value, d.Real())
	list.Sensitivity = append(list.Sensitivity, d.Gradient(list.Labels))
}

// Render 格式化输出记录内容（JSON）
func (list *Record) Render(w io.Writer) error {
	return json.NewEncoder(w).Encode(list)
}

func (list *Record) Error(err error) { log.Println(err) }
