package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"dual"
	"dual/debug"
	"dual/maths"
)

func main() {
	bench := flag.Int("bench", 100000, "重复加法基准的迭代次数")
	out := flag.String("out", "sensitivity.html", "敏感度图表输出文件")
	addr := flag.String("addr", "", "非空时启动调试页面服务（如 :8080）")
	flag.Parse()

	// 混合标量/Dual 矩阵的部分主元行置换
	a, err := maths.NewDenseMatrixWithData([][]dual.Num{
		{dual.F(1.0), dual.D(dual.MustNew(2.0, nil, nil))},
		{dual.F(4.0), dual.D(dual.MustNew(5.0, nil, nil))},
	})
	if err != nil {
		log.Fatal(err)
	}
	p, pa, err := maths.PivotMatrix(a)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("A =")
	fmt.Print(a)
	fmt.Println("P =", p.Vector())
	fmt.Println("PA =")
	fmt.Print(pa)
	fmt.Println("P·A (gonum, 实部) =")
	fmt.Println(maths.PermutedReal(p, a).RawMatrix().Data)

	// 宽 Dual 的重复加法微基准
	labels := make([]string, 1000)
	seeds := make([]float64, 1000)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i)
		seeds[i] = float64(i)
	}
	d1 := dual.MustNew(1.1, labels, seeds)
	start := time.Now()
	for i := 0; i < *bench; i++ {
		_ = d1.Add(d1)
	}
	elapsed := time.Since(start)
	fmt.Printf("Add 基准: %d 次, 单次 %v\n", *bench, elapsed/time.Duration(*bench))

	// 敏感度图表：f(x) = exp(r·x) 对利率变量 r 的敏感度随 x 变化
	c := &debug.Charts{}
	c.Init("f(x) = exp(r·x)", []string{"r"})
	r := dual.MustNew(0.05, []string{"r"}, nil)
	for i := 0; i <= 100; i++ {
		x := float64(i) / 10
		c.Update(x, r.MulScalar(x).Exp())
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := c.Render(f); err != nil {
		log.Fatal(err)
	}
	fmt.Println("图表已写入", *out)

	if *addr != "" {
		log.Fatal(c.ListenAndServe(*addr))
	}
}
