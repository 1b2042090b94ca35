// Package curves 提供曲线插值的区间定位工具。
package curves

import (
	"errors"
	"math"
)

// midTolerance 长度 3 序列中点匹配的固定绝对容差
const midTolerance = 1e-15

// IndexLeft 递归区间定位
// 在严格单调序列中返回包含 value 的区间左端下标。
// 参数:
//
//	seq       - 严格单调的浮点序列
//	value     - 查询值
//	leftCount - 当前切片在原序列中的起始偏移（顶层调用传 0）
//
// 返回:
//
//	区间左端在原序列中的下标，错误信息
//
// 契约:
//
//	长度 1 非法（区间定位至少需要一个区间）；
//	长度 2 返回偏移；
//	长度 3 且 value 与中点差值小于 1e-15 时返回偏移；
//	其余情况在中点处对半递归（value <= 中点取含中点的左半，
//	否则取右半并把偏移累加中点下标），直至命中基例
func IndexLeft(seq []float64, value float64, leftCount int) (int, error) {
	n := len(seq)
	switch n {
	case 0:
		return 0, errors.New("curves index_left: empty sequence")
	case 1:
		return 0, errors.New("curves index_left: designed for intervals, cannot index sequence of length 1")
	case 2:
		return leftCount, nil
	default:
		split := (n - 1) / 2
		mid := seq[split]
		if n == 3 && math.Abs(value-mid) < midTolerance {
			return leftCount, nil
		}
		if value <= mid {
			return IndexLeft(seq[:split+1], value, leftCount)
		}
		return IndexLeft(seq[split:], value, leftCount+split)
	}
}
