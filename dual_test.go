package dual

import (
	"errors"
	"reflect"
	"testing"
)

// TestNew 函数测试 Dual 的构造规则，
// 包括默认种子导数、常量构造以及非法参数的快速失败。
func TestNew(t *testing.T) {
	// 1. 显式偏导构造
	d, err := New(2.5, []string{"x", "y"}, []float64{1.0, 2.0})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if d.Real() != 2.5 {
		t.Errorf("Expected real 2.5, got %f", d.Real())
	}
	if !reflect.DeepEqual(d.Vars(), []string{"x", "y"}) {
		t.Errorf("Expected vars [x y], got %v", d.Vars())
	}
	if !reflect.DeepEqual(d.Derivs(), []float64{1.0, 2.0}) {
		t.Errorf("Expected derivs [1 2], got %v", d.Derivs())
	}

	// 2. 空偏导 + 非空变量 → 全 1.0 种子导数
	d, err = New(1.0, []string{"a", "b", "c"}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !reflect.DeepEqual(d.Derivs(), []float64{1.0, 1.0, 1.0}) {
		t.Errorf("Expected seed derivs [1 1 1], got %v", d.Derivs())
	}

	// 3. 两者皆空 → 常量 Dual（共享空集合）
	d, err = New(7.0, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if len(d.Vars()) != 0 || len(d.Derivs()) != 0 {
		t.Errorf("Expected empty constant Dual, got vars %v derivs %v", d.Vars(), d.Derivs())
	}

	// 4. 长度不匹配 → ErrConstruction（2 个标签，1 个偏导）
	_, err = New(1.0, []string{"x", "y"}, []float64{1.0})
	if !errors.Is(err, ErrConstruction) {
		t.Errorf("Expected ErrConstruction for length mismatch, got %v", err)
	}

	// 5. 标签重复 → ErrConstruction
	_, err = New(1.0, []string{"x", "x"}, nil)
	if !errors.Is(err, ErrConstruction) {
		t.Errorf("Expected ErrConstruction for duplicate labels, got %v", err)
	}
}

// TestGradient 函数测试 Gradient 的查询对齐规则：
// 结果与查询标签逐位对齐，未跟踪标签补 0.0，查询外标签被丢弃。
func TestGradient(t *testing.T) {
	d := MustNew(3.0, []string{"a", "b"}, []float64{1.5, 2.5})

	// 1. 查询顺序与跟踪顺序不同
	got := d.Gradient([]string{"b", "a"})
	if !reflect.DeepEqual(got, []float64{2.5, 1.5}) {
		t.Errorf("Expected [2.5 1.5], got %v", got)
	}

	// 2. 未跟踪标签补 0.0
	got = d.Gradient([]string{"a", "z", "b"})
	if !reflect.DeepEqual(got, []float64{1.5, 0.0, 2.5}) {
		t.Errorf("Expected [1.5 0 2.5], got %v", got)
	}

	// 3. 跟踪中的标签不在查询中 → 直接丢弃
	got = d.Gradient([]string{"b"})
	if !reflect.DeepEqual(got, []float64{2.5}) {
		t.Errorf("Expected [2.5], got %v", got)
	}

	// 4. 空查询
	got = d.Gradient(nil)
	if len(got) != 0 {
		t.Errorf("Expected empty gradient, got %v", got)
	}
}

// TestString 函数测试诊断输出格式：
// 实部 6 位小数，变量与偏导最多显示 3 项后接省略号。
func TestString(t *testing.T) {
	// 1. 不超过 3 项时完整显示
	d := MustNew(2.5, []string{"a", "b"}, []float64{1.0, 2.5})
	want := "<Dual: 2.500000, (a, b), [1, 2.5]>"
	if d.String() != want {
		t.Errorf("Expected %q, got %q", want, d.String())
	}

	// 2. 超过 3 项时截断并加省略号
	d = MustNew(1.0, []string{"a", "b", "c", "d"}, []float64{1, 2, 3, 4})
	want = "<Dual: 1.000000, (a, b, c, ...), [1, 2, 3, ...]>"
	if d.String() != want {
		t.Errorf("Expected %q, got %q", want, d.String())
	}

	// 3. 常量 Dual
	d = Const(0.5)
	want = "<Dual: 0.500000, (), []>"
	if d.String() != want {
		t.Errorf("Expected %q, got %q", want, d.String())
	}
}

// TestVarSetSharing 函数测试变量集合的共享语义：
// 同一集合引用在运算结果中被原样传递，指针判等即可命中快速路径。
func TestVarSetSharing(t *testing.T) {
	a := MustNew(1.0, []string{"x", "y"}, nil)
	b := MustNew(2.0, []string{"x"}, nil)

	// 1. 子集对齐保留大集合引用
	z := a.Add(b)
	if !z.SharesVars(a) {
		t.Error("Expected result to share the larger operand's VarSet")
	}

	// 2. 共享集合的两 Dual 再运算走快速路径（结果仍共享）
	w := z.Mul(a)
	if !w.SharesVars(a) {
		t.Error("Expected product to keep sharing the VarSet")
	}

	// 3. 不同内容的集合不共享
	c := MustNew(1.0, []string{"p"}, nil)
	if a.SharesVars(c) {
		t.Error("Expected independent VarSets not to be shared")
	}
}
