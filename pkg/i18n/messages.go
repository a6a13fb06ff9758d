package i18n

// Catalog keys are grouped by prefix:
//   error.*         field validation messages
//   contact.*       contact form labels and email layout
//   quote.*         quote form labels and email layout
//   companyType.*, transactions.*, bankAccounts.*, turnover.*  enum display labels
//   fee.*           fee estimate rendering

var messagesEN = map[string]string{
	"error.required":      "This field is required",
	"error.invalidEmail":  "Please enter a valid email address",
	"error.phoneTooShort": "Phone number is too short (minimum 8 digits)",
	"error.phoneTooLong":  "Phone number is too long (maximum 15 digits)",
	"error.selectService": "Please select at least one service",
	"error.invalidOption": "Please select a valid option",
	"error.invalid":       "This field is invalid",

	"contact.title":                         "New Contact Inquiry",
	"contact.section.contact":               "CONTACT INFORMATION",
	"contact.section.services":              "SERVICES OF INTEREST",
	"contact.section.message":               "MESSAGE",
	"contact.field.name":                    "Name",
	"contact.field.email":                   "Email",
	"contact.field.company":                 "Company",
	"contact.field.services":                "Selected Services",
	"contact.noServices":                    "None selected",
	"contact.service.accountingBookkeeping": "Accounting & Bookkeeping",
	"contact.service.auditAssurance":        "Audit & Assurance",
	"contact.service.taxAdvisory":           "Tax & Business Advisory",
	"contact.service.companySecretarial":    "Company Secretarial",

	"quote.title":                            "New Quote Request",
	"quote.section.client":                   "CLIENT INFORMATION",
	"quote.section.services":                 "SERVICE REQUIREMENTS",
	"quote.section.business":                 "BUSINESS DETAILS",
	"quote.section.fees":                     "ESTIMATED FEES",
	"quote.field.companyName":                "Company Name",
	"quote.field.natureOfBusiness":           "Nature of Business",
	"quote.field.companyType":                "Company Type",
	"quote.field.contactPerson":              "Contact Person",
	"quote.field.position":                   "Position",
	"quote.field.email":                      "Email",
	"quote.field.phone":                      "Phone",
	"quote.field.services":                   "Selected Services",
	"quote.field.transactions":               "Transactions/Month",
	"quote.field.bankAccounts":               "Bank Accounts",
	"quote.field.employees":                  "Employees",
	"quote.field.turnover":                   "Annual Turnover",
	"quote.service.accountingBookkeeping":    "Accounting & Bookkeeping",
	"quote.service.auditServices":            "Audit Services",
	"quote.service.taxComputationFiling":     "Tax Computation & Filing (Profits Tax)",
	"quote.service.employerReturnFiling":     "Employer's Return Filing",
	"quote.service.companySecretaryServices": "Company Secretary Services",
	"quote.service.taxEnquiryCase":           "Tax Enquiry Case",
	"quote.service.other":                    "Other",

	"companyType.newly-incorporated": "Newly incorporated company / company with minimal transactions",
	"companyType.active-sme":         "Active Small & Medium-sized Enterprise",
	"companyType.established":        "Established company",

	"transactions.up-to-25":      "Up to 25 bank transactions per month",
	"transactions.up-to-100":     "Up to 100 transactions per month",
	"transactions.more-than-100": "More than 100 transactions per month",

	"bankAccounts.1":           "1 bank account",
	"bankAccounts.up-to-3":     "Up to 3 bank accounts",
	"bankAccounts.more-than-3": "More than 3 bank accounts",

	"turnover.1m":     "Up to HKD 1 million",
	"turnover.1-10m":  "HKD 1 - 10 million",
	"turnover.10-50m": "HKD 10 - 50 million",
	"turnover.50m+":   "More than HKD 50 million",

	"fee.range":    "HKD {0} - {1}",
	"fee.from":     "From HKD {0}",
	"fee.perMonth": "/ month",

	"email.submittedAt": "Submitted",
}

var messagesZhHK = map[string]string{
	"error.required":      "此欄位為必填",
	"error.invalidEmail":  "請輸入有效的電郵地址",
	"error.phoneTooShort": "電話號碼太短（最少 8 位數字）",
	"error.phoneTooLong":  "電話號碼太長（最多 15 位數字）",
	"error.selectService": "請選擇最少一項服務",
	"error.invalidOption": "請選擇有效的選項",
	"error.invalid":       "此欄位無效",

	"contact.title":                         "新查詢",
	"contact.section.contact":               "聯絡資料",
	"contact.section.services":              "感興趣的服務",
	"contact.section.message":               "訊息",
	"contact.field.name":                    "姓名",
	"contact.field.email":                   "電郵",
	"contact.field.company":                 "公司",
	"contact.field.services":                "已選服務",
	"contact.noServices":                    "未有選擇",
	"contact.service.accountingBookkeeping": "會計及簿記",
	"contact.service.auditAssurance":        "審計及核證",
	"contact.service.taxAdvisory":           "稅務及商業諮詢",
	"contact.service.companySecretarial":    "公司秘書",

	"quote.title":                            "新報價請求",
	"quote.section.client":                   "客戶資料",
	"quote.section.services":                 "服務需求",
	"quote.section.business":                 "業務詳情",
	"quote.section.fees":                     "預計收費",
	"quote.field.companyName":                "公司名稱",
	"quote.field.natureOfBusiness":           "業務性質",
	"quote.field.companyType":                "公司類型",
	"quote.field.contactPerson":              "聯絡人",
	"quote.field.position":                   "職位",
	"quote.field.email":                      "電郵",
	"quote.field.phone":                      "電話",
	"quote.field.services":                   "已選服務",
	"quote.field.transactions":               "每月交易數量",
	"quote.field.bankAccounts":               "銀行戶口",
	"quote.field.employees":                  "僱員人數",
	"quote.field.turnover":                   "年度營業額",
	"quote.service.accountingBookkeeping":    "會計及簿記",
	"quote.service.auditServices":            "審計服務",
	"quote.service.taxComputationFiling":     "稅務計算及報稅（利得稅）",
	"quote.service.employerReturnFiling":     "僱主報税表申報",
	"quote.service.companySecretaryServices": "公司秘書服務",
	"quote.service.taxEnquiryCase":           "稅務查詢個案",
	"quote.service.other":                    "其他",

	"companyType.newly-incorporated": "新成立公司／交易量極少的公司",
	"companyType.active-sme":         "活躍中小企",
	"companyType.established":        "具規模公司",

	"transactions.up-to-25":      "每月最多 25 宗銀行交易",
	"transactions.up-to-100":     "每月最多 100 宗交易",
	"transactions.more-than-100": "每月超過 100 宗交易",

	"bankAccounts.1":           "1 個銀行戶口",
	"bankAccounts.up-to-3":     "最多 3 個銀行戶口",
	"bankAccounts.more-than-3": "超過 3 個銀行戶口",

	"turnover.1m":     "最多港幣 100 萬",
	"turnover.1-10m":  "港幣 100 萬至 1,000 萬",
	"turnover.10-50m": "港幣 1,000 萬至 5,000 萬",
	"turnover.50m+":   "超過港幣 5,000 萬",

	"fee.range":    "港幣 {0} - {1}",
	"fee.from":     "港幣 {0} 起",
	"fee.perMonth": "／月",

	"email.submittedAt": "提交時間",
}
