// Package contrast 实现基于 WCAG 2.x 的颜色对比度审计
//
// 输入是一段包含 CSS 自定义属性（如 `--color-background: 255 255 255;`）的源文本，
// 包内负责按选择器抽取主题块、解析颜色 token、计算相对亮度与对比度并给出分级结果。
// 所有函数均为无状态的纯函数，文件读取之外不产生任何副作用。
package contrast

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB 表示一个 sRGB 颜色，三个通道取值范围均为 [0,255]
type RGB struct {
	R uint8 `json:"r" yaml:"r" toml:"r"`
	G uint8 `json:"g" yaml:"g" toml:"g"`
	B uint8 `json:"b" yaml:"b" toml:"b"`
}

var (
	// White 纯白
	White = RGB{255, 255, 255}
	// Black 纯黑
	Black = RGB{0, 0, 0}
)

// String 以 token 源文件中的写法输出，例如 "255 255 255"
func (c RGB) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// Hex 返回 #rrggbb 形式的十六进制表示
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Colorful 转换为 go-colorful 的颜色类型
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// ParseColor 解析命令行输入的颜色
//
// 支持的写法:
//   - "#rrggbb" / "#rgb"
//   - "r g b" 或 "r,g,b"（与 token 源文件一致）
func ParseColor(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB{r, g, b}, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return RGB{}, fmt.Errorf("invalid color %q: expected 3 channels, got %d", s, len(fields))
	}
	var ch [3]uint8
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 || v > 255 {
			return RGB{}, fmt.Errorf("invalid color %q: channel %q out of range 0-255", s, f)
		}
		ch[i] = uint8(v)
	}
	return RGB{ch[0], ch[1], ch[2]}, nil
}

// LinearizeChannel 将 8 位 sRGB 通道值解码为线性值
// 断点 0.03928 与指数 2.4 取自 WCAG 2.x 定义，不可改动
func LinearizeChannel(c uint8) float64 {
	s := float64(c) / 255
	if s <= 0.03928 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// RelativeLuminance 计算相对亮度
func RelativeLuminance(c RGB) float64 {
	return 0.2126*LinearizeChannel(c.R) +
		0.7152*LinearizeChannel(c.G) +
		0.0722*LinearizeChannel(c.B)
}

// Ratio 计算两个相对亮度之间的对比度，参数顺序无关
func Ratio(a, b float64) float64 {
	hi, lo := math.Max(a, b), math.Min(a, b)
	return (hi + 0.05) / (lo + 0.05)
}

// RatioRGB 计算两个颜色之间的对比度
func RatioRGB(fg, bg RGB) float64 {
	return Ratio(RelativeLuminance(fg), RelativeLuminance(bg))
}
