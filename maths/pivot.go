package maths

import (
	"errors"
	"fmt"
)

// ErrSingularMatrix 结构奇异：某主元列自当前行起全部候选幅值为零，
// 部分主元策略无法给出有效主元
var ErrSingularMatrix = errors.New("maths pivot: matrix is structurally singular")

// Permutation 行置换
// p[i] = 重排后第 i 行对应的原始行号
type Permutation struct {
	p []int
}

// newIdentityPermutation 创建单位置换
func newIdentityPermutation(n int) *Permutation {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &Permutation{p: p}
}

// swap 交换置换中的两行
func (p *Permutation) swap(i, j int) {
	p.p[i], p.p[j] = p.p[j], p.p[i]
}

// Len 获取置换维度
func (p *Permutation) Len() int {
	return len(p.p)
}

// Vector 返回置换向量副本（Vector()[i] = 重排后第 i 行的原始行号）
func (p *Permutation) Vector() []int {
	cpy := make([]int, len(p.p))
	copy(cpy, p.p)
	return cpy
}

// Matrix 返回 N×N 置换矩阵（每行每列恰好一个 1.0，其余为 0.0）
func (p *Permutation) Matrix() [][]float64 {
	n := len(p.p)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][p.p[i]] = 1.0
	}
	return m
}

// PivotMatrix 部分主元行置换
// 这是消元类分解（LU 等）的选主元步骤：只重排行，不做消元。
// 参数:
//
//	a - 方阵（元素支持幅值比较）
//
// 返回:
//
//	置换 P、行重排后的 P·A、错误信息
//
// 算法步骤:
//  1. 输入合法性校验（必须为非空方阵）
//  2. 初始化：单位置换 + 输入矩阵的工作副本
//  3. 对每一列 j：在 [j, n-1] 行中扫描该列，选取幅值严格最大的行
//     （扫描使用严格大于比较，幅值相等时先到先得）；
//     列内候选幅值全为零 → 返回 ErrSingularMatrix；
//     选中行不在当前位置时同步交换置换与工作副本的行
func PivotMatrix[T Entry](a Matrix[T]) (*Permutation, Matrix[T], error) {
	// 1. 输入合法性校验
	if !a.IsSquare() {
		return nil, nil, errors.New("maths pivot: input must be square matrix")
	}
	n := a.Rows()
	if n == 0 {
		return nil, nil, errors.New("maths pivot: empty matrix")
	}

	// 2. 初始化
	perm := newIdentityPermutation(n)
	pa := NewDenseMatrix[T](n, n)
	a.Copy(pa)

	// 3. 逐列选主元并交换行
	for j := 0; j < n; j++ {
		maxRow := j
		maxAbs := pa.Get(j, j).Abs()
		for i := j + 1; i < n; i++ {
			if v := pa.Get(i, j).Abs(); v > maxAbs {
				maxAbs = v
				maxRow = i
			}
		}

		// 检查主元候选是否全部退化
		if maxAbs == 0 {
			return nil, nil, fmt.Errorf("%w: column %d has no non-zero pivot candidate", ErrSingularMatrix, j)
		}

		if maxRow != j {
			pa.SwapRows(j, maxRow)
			perm.swap(j, maxRow)
		}
	}
	return perm, pa, nil
}
