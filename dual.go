// Package dual 实现携带命名敏感度的一阶前向自动微分数值类型。
//
// Dual 同时保存函数值与对一组命名输入变量的一阶偏导数；
// 对 Dual 做普通算术运算时敏感度随之自动传播。
// 曲线构建与线性代数代码可将其作为普通数值类型直接代入使用。
package dual

import (
	"fmt"
	"strconv"
	"strings"
)

// Dual 一阶前向自动微分数
// real 为函数值，vars 为跟踪的变量集合（多实例共享引用），
// dual 为与 vars 逐位对齐的一阶偏导向量。
// 不变量：len(dual) == vars.Len() 恒成立。
// Dual 构造后不可变，所有运算均返回新值。
type Dual struct {
	real float64
	vars *VarSet
	dual []float64
}

// New 创建 Dual
// 参数:
//
//	real - 函数值
//	vars - 变量标签序列（必须互不相同）
//	dual - 一阶偏导序列（与 vars 等长，或为空）
//
// 返回:
//
//	Dual 实例，错误信息（长度不匹配或标签重复时返回 ErrConstruction）
//
// 说明:
//
//	dual 为空且 vars 非空时，偏导默认为全 1.0（新命名变量的单位种子导数）；
//	两者皆空时得到共享空集合的常量 Dual（零元/幺元）。
func New(real float64, vars []string, dual []float64) (*Dual, error) {
	if len(dual) != 0 && len(dual) != len(vars) {
		return nil, fmt.Errorf("%w: dual length %d does not match vars length %d",
			ErrConstruction, len(dual), len(vars))
	}
	vs, err := NewVarSet(vars)
	if err != nil {
		return nil, err
	}
	var d []float64
	if len(dual) == 0 && len(vars) > 0 {
		d = make([]float64, len(vars))
		for i := range d {
			d[i] = 1.0
		}
	} else {
		d = make([]float64, len(dual))
		copy(d, dual)
	}
	return &Dual{real: real, vars: vs, dual: d}, nil
}

// MustNew 创建 Dual，参数非法时 panic（测试与演示中的字面量专用）
func MustNew(real float64, vars []string, dual []float64) *Dual {
	d, err := New(real, vars, dual)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero 加法单位元（空变量集合，实部 0.0）
func Zero() *Dual {
	return &Dual{real: 0, vars: emptyVars}
}

// One 乘法单位元（空变量集合，实部 1.0）
func One() *Dual {
	return &Dual{real: 1, vars: emptyVars}
}

// Const 无敏感度常量
func Const(real float64) *Dual {
	return &Dual{real: real, vars: emptyVars}
}

// Real 获取函数值
func (d *Dual) Real() float64 {
	return d.real
}

// Vars 返回变量标签序列的切片副本
func (d *Dual) Vars() []string {
	return d.vars.Labels()
}

// Derivs 返回偏导向量的切片副本（与 Vars 逐位对齐）
func (d *Dual) Derivs() []float64 {
	cpy := make([]float64, len(d.dual))
	copy(cpy, d.dual)
	return cpy
}

// VarSet 获取底层共享的变量集合
func (d *Dual) VarSet() *VarSet {
	return d.vars
}

// SharesVars 判断两 Dual 是否共享同一底层变量集合
// 指针判等，命中即可跳过对齐步骤走快速算术路径
func (d *Dual) SharesVars(other *Dual) bool {
	return d.vars == other.vars
}

// Gradient 对查询标签序列返回逐位对齐的偏导向量
// 未跟踪的标签补 0.0；本 Dual 跟踪但查询中不存在的标签直接丢弃
func (d *Dual) Gradient(vars []string) []float64 {
	grad := make([]float64, len(vars))
	for i, v := range vars {
		if j, ok := d.vars.IndexOf(v); ok {
			grad[i] = d.dual[j]
		}
	}
	return grad
}

// String 诊断输出
// 实部保留 6 位小数；变量与偏导最多显示前 3 项，超出以省略号标记
func (d *Dual) String() string {
	n := d.vars.Len()
	show := n
	if show > 3 {
		show = 3
	}
	vars := strings.Join(d.vars.labels[:show], ", ")
	derivs := make([]string, show)
	for i := 0; i < show; i++ {
		derivs[i] = strconv.FormatFloat(d.dual[i], 'g', -1, 64)
	}
	dual := strings.Join(derivs, ", ")
	if n > 3 {
		vars += ", ..."
		dual += ", ..."
	}
	return fmt.Sprintf("<Dual: %.6f, (%s), [%s]>", d.real, vars, dual)
}
