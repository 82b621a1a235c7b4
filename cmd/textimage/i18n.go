// Package main provides localization for the textimage CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		"Render lines of text into a PNG image":         "テキスト行をPNG画像に描画",
		"YAML job file":                                 "YAMLジョブファイル",
		"Output PNG file path":                          "出力PNGファイルパス",
		"Write the PNG image to standard output":        "PNG画像を標準出力に書き込む",
		"Canvas width in pixels (default: 500)":         "キャンバスの幅（ピクセル、デフォルト: 500）",
		"Background color (hex, e.g., #FFFFFF)":         "背景色（16進数、例: #FFFFFF）",
		"Text color (hex, e.g., #000000)":               "文字色（16進数、例: #000000）",
		"Font size in points (default: 12)":             "フォントサイズ（ポイント、デフォルト: 12）",
		"Text rotation in degrees":                      "テキストの回転角度（度）",
		"Horizontal start position (default: 10)":       "水平開始位置（デフォルト: 10）",
		"Vertical start position (default: 10)":         "垂直開始位置（デフォルト: 10）",
		"Line height in pixels (default: 25)":           "行の高さ（ピクセル、デフォルト: 25）",
		"TrueType font file":                            "TrueTypeフォントファイル",
		"Keep Western digits instead of Persian digits": "ペルシア数字に変換せず西洋数字を維持",
		"Log level (debug, info, warn, error)":          "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                       "全てのログ出力を抑制",
	})

	l10n.Register("fa", l10n.LexiconMap{
		"Render lines of text into a PNG image":         "رندر خطوط متن در تصویر PNG",
		"YAML job file":                                 "پرونده کار YAML",
		"Output PNG file path":                          "مسیر پرونده PNG خروجی",
		"Write the PNG image to standard output":        "نوشتن تصویر PNG در خروجی استاندارد",
		"Canvas width in pixels (default: 500)":         "عرض بوم به پیکسل (پیش‌فرض: 500)",
		"Background color (hex, e.g., #FFFFFF)":         "رنگ پس‌زمینه (هگز، مثلاً #FFFFFF)",
		"Text color (hex, e.g., #000000)":               "رنگ متن (هگز، مثلاً #000000)",
		"Font size in points (default: 12)":             "اندازه قلم به پوینت (پیش‌فرض: 12)",
		"Text rotation in degrees":                      "زاویه چرخش متن به درجه",
		"Horizontal start position (default: 10)":       "موقعیت افقی شروع (پیش‌فرض: 10)",
		"Vertical start position (default: 10)":         "موقعیت عمودی شروع (پیش‌فرض: 10)",
		"Line height in pixels (default: 25)":           "ارتفاع خط به پیکسل (پیش‌فرض: 25)",
		"TrueType font file":                            "پرونده قلم TrueType",
		"Keep Western digits instead of Persian digits": "حفظ ارقام لاتین به جای ارقام فارسی",
		"Log level (debug, info, warn, error)":          "سطح گزارش (debug, info, warn, error)",
		"Suppress all log output":                       "خاموش کردن همه گزارش‌ها",
	})
}
