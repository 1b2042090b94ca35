package dual

// toCombined 将两 Dual 对齐到公共变量集合（二元运算前的对齐算法）
// 算法步骤:
//  1. 底层集合相同（指针判等）→ 无需变换，原样返回
//  2. 一方标签为另一方子集 → 保留大集合引用不变，
//     小集合一方按零填充规则重映射到大集合
//  3. 其余情形 → 构造有序并集（接收者标签按原顺序在前，
//     另一方未出现的标签按其原顺序补后），双方重映射到同一共享集合
//
// 对齐永不失败；复杂度与标签总数成正比。
// 常见场景（新建 Dual 与宽种子 Dual 组合）命中子集分支，避免重新分配集合。
func (d *Dual) toCombined(other *Dual) (*Dual, *Dual) {
	switch {
	case d.vars == other.vars:
		return d, other
	case d.vars.Len() >= other.vars.Len() && d.vars.containsAll(other.vars):
		return d, other.toOrderedVars(d.vars)
	case d.vars.Len() < other.vars.Len() && other.vars.containsAll(d.vars):
		return d.toOrderedVars(other.vars), other
	default:
		u := d.vars.union(other.vars)
		return d.toVars(u), other.toVars(u)
	}
}

// toOrderedVars 重映射到给定集合
// 标签已逐位相同时仅替换共享集合引用（偏导向量可直接共享，Dual 不可变），
// 否则执行完整的零填充重映射
func (d *Dual) toOrderedVars(vs *VarSet) *Dual {
	if d.vars.sameOrder(vs) {
		return &Dual{real: d.real, vars: vs, dual: d.dual}
	}
	return d.toVars(vs)
}

// toVars 将偏导向量按零填充规则重映射到新集合
// 新集合中本 Dual 未跟踪的标签偏导为 0.0，其余位置拷贝原值
func (d *Dual) toVars(vs *VarSet) *Dual {
	dual := make([]float64, vs.Len())
	for i, l := range vs.labels {
		if j, ok := d.vars.IndexOf(l); ok {
			dual[i] = d.dual[j]
		}
	}
	return &Dual{real: d.real, vars: vs, dual: dual}
}
