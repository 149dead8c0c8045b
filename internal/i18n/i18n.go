// Package i18n resolves response messages for the storefront locales.
// Uzbek is the primary locale; Russian is the fallback pair. Unknown keys
// echo the key so a missing translation is visible, not silent.
package i18n

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/constants"
)

var messages = map[string]map[string]string{
	constants.LocaleUz: {
		"ok":                     "Muvaffaqiyatli",
		"bad_request":            "So'rov noto'g'ri",
		"unauthorized":           "Avtorizatsiya talab qilinadi",
		"forbidden":              "Ruxsat yo'q",
		"not_found":              "Topilmadi",
		"internal_error":         "Serverda xatolik yuz berdi",
		"too_many_requests":      "Urinishlar soni oshib ketdi, keyinroq qayta urinib ko'ring",
		"product_name_required":  "Mahsulot nomini kiriting",
		"product_price_invalid":  "Mahsulot narxi noto'g'ri",
		"too_many_images":        "Rasmlar soni 4 tadan oshmasligi kerak",
		"category_name_required": "Kategoriya nomini kiriting",
		"category_name_exists":   "Bunday nomli kategoriya allaqachon mavjud",
		"category_in_use":        "Kategoriyada mahsulotlar bor, avval ularni o'chiring",
		"banner_invalid":         "Banner ma'lumotlari noto'g'ri",
		"quantity_invalid":       "Miqdor noto'g'ri",
		"cart_empty":             "Savat bo'sh",
		"order_status_invalid":   "Buyurtma holati noto'g'ri",
		"phone_invalid":          "Telefon raqami noto'g'ri",
		"phone_exists":           "Bu raqam allaqachon ro'yxatdan o'tgan",
		"invalid_credentials":    "Login yoki parol noto'g'ri",
		"user_not_found":         "Bu raqam ro'yxatdan o'tmagan",
		"password_policy":        "Parol talablarga javob bermaydi",
		"reset_code_invalid":     "Tasdiqlash kodi noto'g'ri yoki eskirgan",
		"captcha_invalid":        "Rasmdagi kod noto'g'ri",
		"remote_sync_failed":     "O'zgarishlar saqlandi, lekin serverga yuborilmadi",
	},
	constants.LocaleRu: {
		"ok":                     "Успешно",
		"bad_request":            "Некорректный запрос",
		"unauthorized":           "Требуется авторизация",
		"forbidden":              "Доступ запрещён",
		"not_found":              "Не найдено",
		"internal_error":         "Внутренняя ошибка сервера",
		"too_many_requests":      "Слишком много попыток, повторите позже",
		"product_name_required":  "Укажите название товара",
		"product_price_invalid":  "Некорректная цена товара",
		"too_many_images":        "Не более 4 изображений",
		"category_name_required": "Укажите название категории",
		"category_name_exists":   "Категория с таким названием уже существует",
		"category_in_use":        "В категории есть товары, сначала удалите их",
		"banner_invalid":         "Некорректные данные баннера",
		"quantity_invalid":       "Некорректное количество",
		"cart_empty":             "Корзина пуста",
		"order_status_invalid":   "Некорректный статус заказа",
		"phone_invalid":          "Некорректный номер телефона",
		"phone_exists":           "Этот номер уже зарегистрирован",
		"invalid_credentials":    "Неверный логин или пароль",
		"user_not_found":         "Этот номер не зарегистрирован",
		"password_policy":        "Пароль не соответствует требованиям",
		"reset_code_invalid":     "Код подтверждения неверен или истёк",
		"captcha_invalid":        "Неверный код с картинки",
		"remote_sync_failed":     "Изменения сохранены, но не отправлены на сервер",
	},
}

// ResolveLocale picks the response locale from the Accept-Language header
// or an explicit lang query parameter. Uzbek is the default.
func ResolveLocale(c *gin.Context) string {
	if lang := strings.ToLower(c.Query("lang")); lang != "" {
		if _, ok := messages[lang]; ok {
			return lang
		}
	}
	header := strings.ToLower(c.GetHeader("Accept-Language"))
	for _, locale := range constants.SupportedLocales {
		if strings.Contains(header, locale) {
			return locale
		}
	}
	return constants.LocaleUz
}

// T returns the message for key in the given locale, falling back to Uzbek
// and then to the key itself.
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[constants.LocaleUz][key]; ok {
		return msg
	}
	return key
}
