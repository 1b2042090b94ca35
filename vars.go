package dual

import "fmt"

// VarSet 有序去重变量集合（标签 → 下标 O(1) 查找）
// 构造后不可变，多个 Dual 通过指针共享同一实例；
// 指针相同即集合相同，为二元运算提供快速路径。
type VarSet struct {
	labels []string
	index  map[string]int
}

// emptyVars 全局共享的空集合（常量 Dual 专用）
var emptyVars = &VarSet{index: map[string]int{}}

// NewVarSet 由标签序列创建变量集合
// 参数:
//
//	labels - 变量标签序列（必须互不相同）
//
// 返回:
//
//	集合实例，错误信息（标签重复时返回 ErrConstruction）
func NewVarSet(labels []string) (*VarSet, error) {
	if len(labels) == 0 {
		return emptyVars, nil
	}
	vs := &VarSet{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	copy(vs.labels, labels)
	for i, l := range vs.labels {
		if _, ok := vs.index[l]; ok {
			return nil, fmt.Errorf("%w: duplicate variable %q", ErrConstruction, l)
		}
		vs.index[l] = i
	}
	return vs, nil
}

// Len 获取集合大小
func (vs *VarSet) Len() int {
	return len(vs.labels)
}

// Labels 返回标签序列的切片副本
func (vs *VarSet) Labels() []string {
	cpy := make([]string, len(vs.labels))
	copy(cpy, vs.labels)
	return cpy
}

// IndexOf 查询标签对应的下标
func (vs *VarSet) IndexOf(label string) (int, bool) {
	i, ok := vs.index[label]
	return i, ok
}

// Contains 判断标签是否存在于集合中
func (vs *VarSet) Contains(label string) bool {
	_, ok := vs.index[label]
	return ok
}

// String 返回集合的字符串表示
func (vs *VarSet) String() string {
	return fmt.Sprintf("%v", vs.labels)
}

// containsAll 判断 other 的全部标签是否包含于 vs
func (vs *VarSet) containsAll(other *VarSet) bool {
	for _, l := range other.labels {
		if _, ok := vs.index[l]; !ok {
			return false
		}
	}
	return true
}

// sameOrder 判断两集合标签逐位相同
func (vs *VarSet) sameOrder(other *VarSet) bool {
	if len(vs.labels) != len(other.labels) {
		return false
	}
	for i, l := range vs.labels {
		if other.labels[i] != l {
			return false
		}
	}
	return true
}

// union 计算有序并集：vs 的标签按原顺序在前，
// other 中未出现的标签按 other 的原顺序补在其后
// 并集中不可能出现重复标签，直接构造新集合
func (vs *VarSet) union(other *VarSet) *VarSet {
	labels := make([]string, len(vs.labels), len(vs.labels)+len(other.labels))
	copy(labels, vs.labels)
	u := &VarSet{
		labels: labels,
		index:  make(map[string]int, len(vs.labels)+len(other.labels)),
	}
	for i, l := range labels {
		u.index[l] = i
	}
	for _, l := range other.labels {
		if _, ok := u.index[l]; !ok {
			u.index[l] = len(u.labels)
			u.labels = append(u.labels, l)
		}
	}
	return u
}
