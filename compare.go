package dual

// Eq 相等判定
// 实部精确相等，且对齐后（底层集合相同时跳过对齐）偏导向量逐位精确相等。
// 注意：实部比较不含容差，累积舍入误差下较脆弱；此处保持精确比较语义，
// 需要容差比较的调用方应自行对 Real() 做近似判断。
func (d *Dual) Eq(other *Dual) bool {
	if d.real != other.real {
		return false
	}
	if d.vars == other.vars {
		return floatsEqual(d.dual, other.dual)
	}
	a, b := d.toCombined(other)
	return floatsEqual(a.dual, b.dual)
}

// EqScalar 标量相等判定
// 等价于与持有该标量实部的零导数常量 Dual 比较
func (d *Dual) EqScalar(f float64) bool {
	return d.Eq(Const(f))
}

// Lt 小于（仅比较实部）
// 排序语义上 Dual 与普通数值一致：导数信息不参与比较，
// 使 Dual 可像标量一样全序排序与选择；与 Eq 的严格规则刻意不对称
func (d *Dual) Lt(other *Dual) bool {
	return d.real < other.real
}

// Le 小于等于（仅比较实部）
func (d *Dual) Le(other *Dual) bool {
	return d.real <= other.real
}

// Gt 大于（仅比较实部）
func (d *Dual) Gt(other *Dual) bool {
	return d.real > other.real
}

// Ge 大于等于（仅比较实部）
func (d *Dual) Ge(other *Dual) bool {
	return d.real >= other.real
}

// floatsEqual 等长浮点向量逐位精确相等
func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
