package dual

import "fmt"

// Sum 序列求和
// 以 Zero 为初值逐项折叠累加；累加过程自然将累加器的变量集合
// 扩展为全体加数集合的并集
func Sum(ds []*Dual) *Dual {
	acc := Zero()
	for _, d := range ds {
		acc = acc.Add(d)
	}
	return acc
}

// Dot 等长序列点积：逐位相乘后求和
// 变量集合的增长贯穿每次乘法与最终求和，
// 结果的集合为所有触及元素集合的并集
func Dot(a, b []*Dual) (*Dual, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("dual dot: length mismatch %d != %d", len(a), len(b))
	}
	prods := make([]*Dual, len(a))
	for i := range a {
		prods[i] = a[i].Mul(b[i])
	}
	return Sum(prods), nil
}
