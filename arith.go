package dual

import (
	"fmt"
	"math"
)

// Add 加法：实部相加，对齐后的偏导向量逐位相加
func (d *Dual) Add(other *Dual) *Dual {
	if d.vars != other.vars {
		d, other = d.toCombined(other)
	}
	dual := make([]float64, len(d.dual))
	for i := range dual {
		dual[i] = d.dual[i] + other.dual[i]
	}
	return &Dual{real: d.real + other.real, vars: d.vars, dual: dual}
}

// Sub 减法：实部相减，对齐后的偏导向量逐位相减
func (d *Dual) Sub(other *Dual) *Dual {
	if d.vars != other.vars {
		d, other = d.toCombined(other)
	}
	dual := make([]float64, len(d.dual))
	for i := range dual {
		dual[i] = d.dual[i] - other.dual[i]
	}
	return &Dual{real: d.real - other.real, vars: d.vars, dual: dual}
}

// Mul 乘法（乘积法则）
// real = a.real*b.real；dual[i] = a.dual[i]*b.real + b.dual[i]*a.real
func (d *Dual) Mul(other *Dual) *Dual {
	if d.vars != other.vars {
		d, other = d.toCombined(other)
	}
	dual := make([]float64, len(d.dual))
	for i := range dual {
		dual[i] = d.dual[i]*other.real + other.dual[i]*d.real
	}
	return &Dual{real: d.real * other.real, vars: d.vars, dual: dual}
}

// Div 除法，定义为 a * b.Pow(-1)（复用乘法与幂运算，不做单独优化）
// 指数 -1 为整数，Pow 不会失败
func (d *Dual) Div(other *Dual) *Dual {
	inv, _ := other.Pow(-1)
	return d.Mul(inv)
}

// AddScalar 标量加法
// 标量视为空变量集合的常量：实部平移，偏导向量不变（直接共享）
func (d *Dual) AddScalar(f float64) *Dual {
	return &Dual{real: d.real + f, vars: d.vars, dual: d.dual}
}

// SubScalar 标量减法（d - f）：实部平移，偏导向量不变
func (d *Dual) SubScalar(f float64) *Dual {
	return &Dual{real: d.real - f, vars: d.vars, dual: d.dual}
}

// ScalarSub 标量在左的减法（f - d）：实部反向平移，偏导向量逐位取负
func (d *Dual) ScalarSub(f float64) *Dual {
	dual := make([]float64, len(d.dual))
	for i, v := range d.dual {
		dual[i] = -v
	}
	return &Dual{real: f - d.real, vars: d.vars, dual: dual}
}

// MulScalar 标量乘法：实部与偏导向量整体缩放
func (d *Dual) MulScalar(f float64) *Dual {
	dual := make([]float64, len(d.dual))
	for i, v := range d.dual {
		dual[i] = v * f
	}
	return &Dual{real: d.real * f, vars: d.vars, dual: dual}
}

// DivScalar 标量除法（d / f）：实部与偏导向量整体缩放
func (d *Dual) DivScalar(f float64) *Dual {
	dual := make([]float64, len(d.dual))
	for i, v := range d.dual {
		dual[i] = v / f
	}
	return &Dual{real: d.real / f, vars: d.vars, dual: dual}
}

// ScalarDiv 标量在左的除法（f / d），定义为 f * d.Pow(-1)
func (d *Dual) ScalarDiv(f float64) *Dual {
	inv, _ := d.Pow(-1)
	return inv.MulScalar(f)
}

// Neg 取负：实部与每个偏导分量取负，变量集合共享引用不重新构造
func (d *Dual) Neg() *Dual {
	dual := make([]float64, len(d.dual))
	for i, v := range d.dual {
		dual[i] = -v
	}
	return &Dual{real: -d.real, vars: d.vars, dual: dual}
}

// Pow 幂运算（链式法则）
// real' = real^p；dual'[i] = p * real^(p-1) * dual[i]
// 非正底数的分数次幂在实数域无定义，返回 ErrDomain
func (d *Dual) Pow(p float64) (*Dual, error) {
	if d.real <= 0 && p != math.Trunc(p) {
		return nil, fmt.Errorf("%w: fractional power %g of non-positive base %g",
			ErrDomain, p, d.real)
	}
	c := p * math.Pow(d.real, p-1)
	dual := make([]float64, len(d.dual))
	for i, v := range d.dual {
		dual[i] = c * v
	}
	return &Dual{real: math.Pow(d.real, p), vars: d.vars, dual: dual}, nil
}

// PowMod 带模幂运算入口：Dual 类型不支持模运算
// modulo 非零时返回 ErrUnsupported，为零时等价于 Pow
func (d *Dual) PowMod(p float64, modulo int) (*Dual, error) {
	if modulo != 0 {
		return nil, fmt.Errorf("%w: power function with mod not available for Dual", ErrUnsupported)
	}
	return d.Pow(p)
}

// Exp 指数函数：real' = e^real；dual'[i] = e^real * dual[i]
func (d *Dual) Exp() *Dual {
	c := math.Exp(d.real)
	dual := make([]float64, len(d.dual))
	for i, v := range d.dual {
		dual[i] = c * v
	}
	return &Dual{real: c, vars: d.vars, dual: dual}
}

// Log 自然对数：real' = ln(real)；dual'[i] = dual[i] / real
// 实部非正时返回 ErrDomain
func (d *Dual) Log() (*Dual, error) {
	if d.real <= 0 {
		return nil, fmt.Errorf("%w: log of non-positive value %g", ErrDomain, d.real)
	}
	dual := make([]float64, len(d.dual))
	for i, v := range d.dual {
		dual[i] = v / d.real
	}
	return &Dual{real: math.Log(d.real), vars: d.vars, dual: dual}, nil
}

// Abs 返回实部绝对值
// 刻意降级为普通标量：绝对值在零点不可导，此处直接丢弃导数信息而非返回 Dual
func (d *Dual) Abs() float64 {
	return math.Abs(d.real)
}

// AddAssign 便捷赋值加法（d += other）
// 计算新值后整体重绑定接收者字段；
// 绝不向可能被其它 Dual 共享的偏导缓冲区原地写入
func (d *Dual) AddAssign(other *Dual) {
	z := d.Add(other)
	d.real, d.vars, d.dual = z.real, z.vars, z.dual
}

// MulAssign 便捷赋值乘法（d *= other），语义同 AddAssign
func (d *Dual) MulAssign(other *Dual) {
	z := d.Mul(other)
	d.real, d.vars, d.dual = z.real, z.vars, z.dual
}
