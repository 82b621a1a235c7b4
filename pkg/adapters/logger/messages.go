package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Builder (debug)
		"Creating canvas %dx%d":        "キャンバスを作成中 %dx%d",
		"Drawing %d lines":             "%d 行を描画中",
		"Drawing line %d/%d":           "行を描画中 %d/%d",
		"Using default decorator":      "デフォルトのデコレーターを使用します",
		"Image encoded: %d bytes":      "画像エンコード完了: %d バイト",
		"Image written to %s":          "画像を %s に書き込みました",
		"Loading font %s at %d pt":     "フォント %s を %d pt で読み込み中",
		"Using built-in font at %d pt": "組み込みフォントを %d pt で使用します",

		// CLI (info)
		"Rendering %d lines":    "%d 行をレンダリング中",
		"Output saved to %s":    "出力を %s に保存しました",
		"Loaded config from %s": "%s から設定を読み込みました",
	})

	l10n.Register("fa", l10n.LexiconMap{
		"Creating canvas %dx%d":        "ایجاد بوم %dx%d",
		"Drawing %d lines":             "رسم %d خط",
		"Drawing line %d/%d":           "رسم خط %d/%d",
		"Using default decorator":      "استفاده از آراینده پیش‌فرض",
		"Image encoded: %d bytes":      "تصویر رمزگذاری شد: %d بایت",
		"Image written to %s":          "تصویر در %s نوشته شد",
		"Loading font %s at %d pt":     "بارگذاری قلم %s با اندازه %d",
		"Using built-in font at %d pt": "استفاده از قلم داخلی با اندازه %d",

		"Rendering %d lines":    "رندر %d خط",
		"Output saved to %s":    "خروجی در %s ذخیره شد",
		"Loaded config from %s": "پیکربندی از %s بارگذاری شد",
	})
}
