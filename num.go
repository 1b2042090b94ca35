package dual

import "strconv"

// Num 标量/Dual 判别联合
// 「无跟踪敏感度的常量」与「带敏感度的 Dual」需要统一处理的场合使用，
// 例如混合元素矩阵。零值为标量 0.0。
// 每个运算对四种组合穷举分派，不依赖隐式数值转换。
type Num struct {
	dual   *Dual
	scalar float64
	isDual bool
}

// F 由标量创建 Num
func F(f float64) Num {
	return Num{scalar: f}
}

// D 由 Dual 创建 Num
func D(d *Dual) Num {
	return Num{dual: d, isDual: true}
}

// IsDual 判断是否携带敏感度
func (n Num) IsDual() bool {
	return n.isDual
}

// Real 获取实部（标量侧返回标量本身）
func (n Num) Real() float64 {
	if n.isDual {
		return n.dual.real
	}
	return n.scalar
}

// Dual 取出 Dual（标量侧返回零导数常量 Dual）
func (n Num) Dual() *Dual {
	if n.isDual {
		return n.dual
	}
	return Const(n.scalar)
}

// Abs 幅值：两侧统一降级为标量（Dual 侧丢弃导数信息，见 Dual.Abs）
func (n Num) Abs() float64 {
	if n.isDual {
		return n.dual.Abs()
	}
	if n.scalar < 0 {
		return -n.scalar
	}
	return n.scalar
}

// Add 加法（穷举分派）
func (n Num) Add(other Num) Num {
	switch {
	case n.isDual && other.isDual:
		return D(n.dual.Add(other.dual))
	case n.isDual:
		return D(n.dual.AddScalar(other.scalar))
	case other.isDual:
		return D(other.dual.AddScalar(n.scalar))
	default:
		return F(n.scalar + other.scalar)
	}
}

// Sub 减法（穷举分派）
func (n Num) Sub(other Num) Num {
	switch {
	case n.isDual && other.isDual:
		return D(n.dual.Sub(other.dual))
	case n.isDual:
		return D(n.dual.SubScalar(other.scalar))
	case other.isDual:
		return D(other.dual.ScalarSub(n.scalar))
	default:
		return F(n.scalar - other.scalar)
	}
}

// Mul 乘法（穷举分派）
func (n Num) Mul(other Num) Num {
	switch {
	case n.isDual && other.isDual:
		return D(n.dual.Mul(other.dual))
	case n.isDual:
		return D(n.dual.MulScalar(other.scalar))
	case other.isDual:
		return D(other.dual.MulScalar(n.scalar))
	default:
		return F(n.scalar * other.scalar)
	}
}

// Div 除法（穷举分派）
func (n Num) Div(other Num) Num {
	switch {
	case n.isDual && other.isDual:
		return D(n.dual.Div(other.dual))
	case n.isDual:
		return D(n.dual.DivScalar(other.scalar))
	case other.isDual:
		return D(other.dual.ScalarDiv(n.scalar))
	default:
		return F(n.scalar / other.scalar)
	}
}

// Neg 取负（穷举分派）
func (n Num) Neg() Num {
	if n.isDual {
		return D(n.dual.Neg())
	}
	return F(-n.scalar)
}

// Eq 相等判定（穷举分派，标量与 Dual 比较遵循 Dual.EqScalar 规则）
func (n Num) Eq(other Num) bool {
	switch {
	case n.isDual && other.isDual:
		return n.dual.Eq(other.dual)
	case n.isDual:
		return n.dual.EqScalar(other.scalar)
	case other.isDual:
		return other.dual.EqScalar(n.scalar)
	default:
		return n.scalar == other.scalar
	}
}

// Lt 小于（仅比较实部）
func (n Num) Lt(other Num) bool {
	return n.Real() < other.Real()
}

// Le 小于等于（仅比较实部）
func (n Num) Le(other Num) bool {
	return n.Real() <= other.Real()
}

// Gt 大于（仅比较实部）
func (n Num) Gt(other Num) bool {
	return n.Real() > other.Real()
}

// Ge 大于等于（仅比较实部）
func (n Num) Ge(other Num) bool {
	return n.Real() >= other.Real()
}

// String 返回 Num 的字符串表示
func (n Num) String() string {
	if n.isDual {
		return n.dual.String()
	}
	return strconv.FormatFloat(n.scalar, 'g', -1, 64)
}
