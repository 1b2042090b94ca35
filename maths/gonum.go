package maths

import (
	"gonum.org/v1/gonum/mat"

	"dual"
)

// Dense 将置换导出为 gonum 稠密矩阵，便于下游继续用 gonum 做消元与求解
func (p *Permutation) Dense() *mat.Dense {
	n := len(p.p)
	d := mat.NewDense(n, n, nil)
	for i, j := range p.p {
		d.Set(i, j, 1.0)
	}
	return d
}

// RealDense 抽取 Num 矩阵各元素实部，导出为 gonum 稠密矩阵
// 导数信息不随导出（gonum 只处理标量）
func RealDense(a Matrix[dual.Num]) *mat.Dense {
	rows, cols := a.Rows(), a.Cols()
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, a.Get(i, j).Real())
		}
	}
	return d
}

// PermutedReal 用 gonum 计算 P·A 的实部乘积
// 与 PivotMatrix 返回的重排矩阵实部逐位一致，可作为下游消元的标量入口
func PermutedReal(p *Permutation, a Matrix[dual.Num]) *mat.Dense {
	var out mat.Dense
	out.Mul(p.Dense(), RealDense(a))
	return &out
}
