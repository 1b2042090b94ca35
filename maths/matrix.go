package maths

import (
	"errors"
	"fmt"
	"strings"
)

// denseMatrix 稠密矩阵实现（行优先存储）
type denseMatrix[T Entry] struct {
	rows, cols int
	data       []T
}

// NewDenseMatrix 创建指定维度的稠密矩阵（元素为 T 的零值）
func NewDenseMatrix[T Entry](rows, cols int) Matrix[T] {
	return &denseMatrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
}

// NewDenseMatrixWithData 从稠密二维切片创建矩阵
// 参数:
//
//	dense - 行优先的二维切片（各行长度必须一致）
//
// 返回:
//
//	矩阵实例，错误信息
func NewDenseMatrixWithData[T Entry](dense [][]T) (Matrix[T], error) {
	rows := len(dense)
	if rows == 0 {
		return nil, errors.New("maths dense matrix: empty input")
	}
	cols := len(dense[0])
	for i, row := range dense {
		if len(row) != cols {
			return nil, fmt.Errorf("maths dense matrix: row %d has length %d, want %d", i, len(row), cols)
		}
	}
	m := &denseMatrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
	for i, row := range dense {
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Rows 获取矩阵行数
func (m *denseMatrix[T]) Rows() int {
	return m.rows
}

// Cols 获取矩阵列数
func (m *denseMatrix[T]) Cols() int {
	return m.cols
}

// IsSquare 判断是否为方阵
func (m *denseMatrix[T]) IsSquare() bool {
	return m.rows == m.cols
}

// Get 获取指定行列元素值
func (m *denseMatrix[T]) Get(row, col int) T {
	return m.data[row*m.cols+col]
}

// Set 设置指定行列元素值
func (m *denseMatrix[T]) Set(row, col int, value T) {
	m.data[row*m.cols+col] = value
}

// ToDense 转换为稠密二维切片（副本）
func (m *denseMatrix[T]) ToDense() [][]T {
	dense := make([][]T, m.rows)
	for i := range dense {
		dense[i] = make([]T, m.cols)
		copy(dense[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return dense
}

// BuildFromDense 从稠密二维切片构建（维度不一致时 panic）
func (m *denseMatrix[T]) BuildFromDense(dense [][]T) {
	if len(dense) != m.rows {
		panic("denseMatrix.BuildFromDense: row dimension mismatch")
	}
	for i, row := range dense {
		if len(row) != m.cols {
			panic("denseMatrix.BuildFromDense: col dimension mismatch")
		}
		copy(m.data[i*m.cols:(i+1)*m.cols], row)
	}
}

// Copy 将自身数据复制到目标矩阵
// 目标为 denseMatrix 时整段复制，否则逐元素复制
func (m *denseMatrix[T]) Copy(a Matrix[T]) {
	if a.Rows() != m.rows || a.Cols() != m.cols {
		panic("denseMatrix.Copy: dimension mismatch")
	}
	if target, ok := a.(*denseMatrix[T]); ok {
		copy(target.data, m.data)
		return
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			a.Set(i, j, m.Get(i, j))
		}
	}
}

// SwapRows 交换两行
func (m *denseMatrix[T]) SwapRows(row1, row2 int) {
	if row1 == row2 {
		return
	}
	r1 := m.data[row1*m.cols : (row1+1)*m.cols]
	r2 := m.data[row2*m.cols : (row2+1)*m.cols]
	for j := range r1 {
		r1[j], r2[j] = r2[j], r1[j]
	}
}

// String 格式化字符串输出（逐行）
func (m *denseMatrix[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		row := make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			row[j] = fmt.Sprintf("%v", m.Get(i, j))
		}
		sb.WriteString("[" + strings.Join(row, ", ") + "]\n")
	}
	return sb.String()
}
