package dual

import "errors"

// 错误分类（哨兵值，调用方用 errors.Is 判别）
var (
	// ErrConstruction 构造参数非法（vars 与 dual 长度不匹配，或标签重复）
	ErrConstruction = errors.New("dual construction: invalid vars/dual")
	// ErrDomain 实数域定义域违规（非正实部取对数、非正底数的分数次幂）
	ErrDomain = errors.New("dual domain: operation undefined for value")
	// ErrUnsupported Dual 类型不支持的运算（带模幂运算）
	ErrUnsupported = errors.New("dual unsupported: operation not available")
)
