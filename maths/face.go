// Package maths 提供在标量/Dual 混合元素上工作的矩阵工具。
// 核心是部分主元行置换：作为消元类分解的预处理步骤，只重排不消元。
package maths

// Entry 支持幅值比较的矩阵元素约束
// 幅值统一为普通标量（Dual 侧取实部绝对值并丢弃导数信息），
// 主元选择只依赖此幅值，元素其余行为对本包不可见
type Entry interface {
	Abs() float64
}

// Matrix 矩阵接口定义
type Matrix[T Entry] interface {
	// 基础属性方法
	Rows() int      // 获取矩阵行数
	Cols() int      // 获取矩阵列数
	IsSquare() bool // 判断是否为方阵（行数=列数）
	String() string // 格式化字符串输出

	// 数据访问方法
	Get(row, col int) T        // 获取指定行列元素值
	Set(row, col int, value T) // 设置指定行列元素值

	// 数据操作和转换方法
	ToDense() [][]T             // 转换为稠密二维切片（副本）
	BuildFromDense(dense [][]T) // 从稠密二维切片构建（维度必须一致）

	// 数据修改方法
	Copy(a Matrix[T])        // 复制自身数据到目标矩阵a
	SwapRows(row1, row2 int) // 交换两行
}
