package dual

import "fmt"

// 平铺数组交换格式：批量导入导出 Dual 序列的实部与梯度。
// 每个 Dual 依给定标签序列展平为 1+len(vars) 个浮点（实部在前，
// 对齐梯度在后），整段数据为这些分段的顺序拼接。

// Pack 批量导出
// 未跟踪的标签梯度补 0.0；Dual 跟踪但 vars 中不存在的标签被丢弃
// （与 Gradient 的对齐规则一致）
func Pack(ds []*Dual, vars []string) []float64 {
	stride := 1 + len(vars)
	out := make([]float64, 0, stride*len(ds))
	for _, d := range ds {
		out = append(out, d.real)
		out = append(out, d.Gradient(vars)...)
	}
	return out
}

// Unpack 批量导入：按 Pack 的展平布局重建 Dual 序列
// 所有重建的 Dual 共享同一个底层变量集合，
// 后续相互运算直接命中指针判等快速路径
func Unpack(flat []float64, vars []string) ([]*Dual, error) {
	vs, err := NewVarSet(vars)
	if err != nil {
		return nil, err
	}
	stride := 1 + vs.Len()
	if len(flat)%stride != 0 {
		return nil, fmt.Errorf("%w: flat length %d is not a multiple of stride %d",
			ErrConstruction, len(flat), stride)
	}
	ds := make([]*Dual, 0, len(flat)/stride)
	for i := 0; i < len(flat); i += stride {
		dual := make([]float64, vs.Len())
		copy(dual, flat[i+1:i+stride])
		ds = append(ds, &Dual{real: flat[i], vars: vs, dual: dual})
	}
	return ds, nil
}
