package maths

import (
	"reflect"
	"testing"

	"dual"
)

// TestDenseMatrixOperations 函数测试稠密矩阵的基本操作，
// 包括创建、设置/获取元素、行交换与复制。
func TestDenseMatrixOperations(t *testing.T) {
	// 创建并初始化一个 2×3 矩阵
	m := NewDenseMatrix[dual.Num](2, 3)
	if m.Rows() != 2 || m.Cols() != 3 || m.IsSquare() {
		t.Errorf("Unexpected dimensions: %d×%d", m.Rows(), m.Cols())
	}

	// 元素零值为标量 0
	if m.Get(0, 0).IsDual() || m.Get(0, 0).Real() != 0.0 {
		t.Errorf("Expected zero scalar entry, got %v", m.Get(0, 0))
	}

	// 测试 Set/Get
	m.Set(0, 1, dual.F(2.0))
	m.Set(1, 2, dual.D(dual.MustNew(3.0, []string{"x"}, nil)))
	if m.Get(0, 1).Real() != 2.0 {
		t.Errorf("Expected Get(0,1) = 2, got %v", m.Get(0, 1))
	}
	if !m.Get(1, 2).IsDual() {
		t.Error("Expected Dual entry at (1,2)")
	}

	// 测试 SwapRows
	m.SwapRows(0, 1)
	if m.Get(1, 1).Real() != 2.0 || !m.Get(0, 2).IsDual() {
		t.Error("SwapRows failed")
	}

	// 测试 Copy
	c := NewDenseMatrix[dual.Num](2, 3)
	m.Copy(c)
	if c.Get(1, 1).Real() != 2.0 || !c.Get(0, 2).IsDual() {
		t.Error("Copy failed")
	}

	// 测试 ToDense/BuildFromDense 往返
	d := c.ToDense()
	r := NewDenseMatrix[dual.Num](2, 3)
	r.BuildFromDense(d)
	if !reflect.DeepEqual(r.ToDense(), d) {
		t.Error("ToDense/BuildFromDense round trip failed")
	}
}

// TestNewDenseMatrixWithData 函数测试从二维切片构造的校验规则。
func TestNewDenseMatrixWithData(t *testing.T) {
	// 1. 空输入
	if _, err := NewDenseMatrixWithData[dual.Num](nil); err == nil {
		t.Error("Expected error for empty input")
	}

	// 2. 行长不一致
	_, err := NewDenseMatrixWithData([][]dual.Num{
		{dual.F(1.0), dual.F(2.0)},
		{dual.F(3.0)},
	})
	if err == nil {
		t.Error("Expected error for ragged rows")
	}

	// 3. 正常构造
	m, err := NewDenseMatrixWithData([][]dual.Num{
		{dual.F(1.0), dual.F(2.0)},
		{dual.F(3.0), dual.F(4.0)},
	})
	if err != nil {
		t.Fatalf("NewDenseMatrixWithData failed: %v", err)
	}
	if !m.IsSquare() || m.Get(1, 0).Real() != 3.0 {
		t.Error("Construction produced wrong matrix")
	}
}
