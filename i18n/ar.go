package i18n

var ar = map[string]string{
	// Auth
	"login":              "تسجيل الدخول",
	"register":           "إنشاء حساب",
	"logout":             "تسجيل الخروج",
	"email":              "البريد الإلكتروني",
	"password":           "كلمة المرور",
	"confirmPassword":    "تأكيد كلمة المرور",
	"name":               "الاسم",
	"loginSuccess":       "تم تسجيل الدخول بنجاح",
	"registerSuccess":    "تم إنشاء الحساب بنجاح",
	"logoutSuccess":      "تم تسجيل الخروج بنجاح",
	"loginError":         "حدث خطأ في تسجيل الدخول",
	"registerError":      "حدث خطأ في إنشاء الحساب",
	"passwordsDontMatch": "كلمات المرور غير متطابقة",
	"emailExists":        "البريد الإلكتروني مستخدم بالفعل",
	"emailRequired":      "البريد الإلكتروني مطلوب",
	"passwordRequired":   "كلمة المرور مطلوبة",
	"nameRequired":       "الاسم مطلوب",

	// Navigation
	"dashboard": "لوحة التحكم",
	"products":  "المنتجات",
	"sales":     "المبيعات",
	"cashier":   "الكاشير",
	"settings":  "الإعدادات",

	// Dashboard
	"totalSales":             "إجمالي المبيعات",
	"totalRevenue":           "إجمالي الإيرادات",
	"lowStockAlerts":         "تنبيهات المخزون المنخفض",
	"productsNeedRestocking": "منتجات تحتاج إلى إعادة التخزين",
	"salesOverview":          "نظرة عامة على المبيعات",
	"revenue":                "الإيرادات",
	"units":                  "الوحدات",
	"topProducts":            "أفضل المنتجات",
	"unitsSold":              "الوحدات المباعة",
	"unitsLeft":              "الوحدات المتبقية",
	"lowStockThreshold":      "حد المخزون المنخفض",
	"noLowStockProducts":     "لا يوجد منتجات بمخزون منخفض",

	// Period filters
	"todayPeriod":  "اليوم",
	"weekPeriod":   "هذا الأسبوع",
	"monthPeriod":  "هذا الشهر",
	"selectPeriod": "اختر الفترة",

	// Products
	"addProduct":         "إضافة منتج",
	"editProduct":        "تعديل منتج",
	"deleteProduct":      "حذف منتج",
	"productName":        "اسم المنتج",
	"productPrice":       "سعر المنتج",
	"productQuantity":    "كمية المنتج",
	"productDescription": "وصف المنتج",
	"productImage":       "صورة المنتج",
	"lowStock":           "مخزون منخفض",
	"outOfStock":         "نفذت الكمية",
	"inStock":            "متوفر",
	"confirmDelete":      "هل أنت متأكد من رغبتك في حذف هذا المنتج؟",
	"productAdded":       "تمت إضافة المنتج بنجاح",
	"productUpdated":     "تم تحديث المنتج بنجاح",
	"productDeleted":     "تم حذف المنتج بنجاح",
	"search":             "بحث",
	"filter":             "تصفية",
	"allProducts":        "كل المنتجات",
	"lowStockOnly":       "المخزون المنخفض فقط",
	"inStockOnly":        "المتوفر فقط",
	"outOfStockOnly":     "النافذ فقط",
	"noData":             "لا توجد بيانات",

	// Cashier
	"newSale":           "بيع جديد",
	"selectProduct":     "اختر منتج",
	"quantity":          "الكمية",
	"unitPrice":         "سعر الوحدة",
	"total":             "المجموع",
	"completeSale":      "إتمام البيع",
	"saleCompleted":     "تم إتمام البيع بنجاح",
	"insufficientStock": "الكمية المطلوبة غير متوفرة في المخزون",
	"printReceipt":      "طباعة الإيصال",
	"reset":             "إعادة تعيين",

	// General
	"save":   "حفظ",
	"cancel": "إلغاء",
	"edit":   "تعديل",
	"delete": "حذف",
	"add":    "إضافة",
	"close":  "إغلاق",
}
