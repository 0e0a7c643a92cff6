package normalize

// Column aliases observed in the record store, newest spelling first.
var (
	operatorFields = struct {
		ID, Email, Name, Surname, Phone, Role, Password, Address Field
	}{
		ID:       Field{"operator id", "id"},
		Email:    Field{"gmail", "email"},
		Name:     Field{"ism", "name"},
		Surname:  Field{"familya", "familiya", "surname"},
		Phone:    Field{"telefon nomer", "telefon", "phone"},
		Role:     Field{"lavozim", "role"},
		Password: Field{"parol", "password"},
		Address:  Field{"manzil", "address"},
	}

	customerFields = struct {
		ID, Name, Surname, Phone, Address, Stage, Note, LogNote, OperatorID, OperatorName, SavedAt Field
		ExtraPhone, Age, SocialURL, LeadSource, InterestedCourse, Goal, EducationType, BusinessType     Field
		RejectionReason                                                                                 Field
	}{
		ID:               Field{"mijoz id", "id"},
		Name:             Field{"ism"},
		Surname:          Field{"familiya", "familya"},
		Phone:            Field{"telefon nomer", "telefon"},
		Address:          Field{"manzili", "manzil"},
		Stage:            Field{"voronka", "holati"},
		Note:             Field{"izoh"},
		LogNote:          Field{"izoh", "note"},
		OperatorID:       Field{"operator id", "operator_id"},
		OperatorName:     Field{"operator"},
		SavedAt:          Field{"saqlash vaqti", "vaqt"},
		ExtraPhone:       Field{"qo'shimcha telefon nomer", "qoshimcha_telefon"},
		Age:              Field{"mijoz yoshi", "yosh"},
		SocialURL:        Field{"url", "social_url"},
		LeadSource:       Field{"lead manbasi", "lead_manbasi"},
		InterestedCourse: Field{"qaysi kursga qiziqmoqda", "qiziqgan_kurs"},
		Goal:             Field{"maqsadi", "maqsad"},
		EducationType:    Field{"taʼlim turi", "talim_turi"},
		BusinessType:     Field{"biznes turi", "biznes_turi"},
		RejectionReason:  Field{"Otkaz sababi", "otkaz_sababi", "otkaz sababi", "Otkaz Sababi"},
	}

	productFields = struct {
		ID, Name, Duration, MonthlyPrice, TotalPrice, Description, Video, Document, Category Field
	}{
		ID:           Field{"product id", "id"},
		Name:         Field{"product", "nomi"},
		Duration:     Field{"davomiyligi"},
		MonthlyPrice: Field{"oylik narxi", "oylik_narx"},
		TotalPrice:   Field{"jami narxi", "narx"},
		Description:  Field{"izoh"},
		Video:        Field{"video"},
		Document:     Field{"hujjat", "hujjati"},
		Category:     Field{"kategoriya", "category"},
	}

	orderFields = struct {
		ID, CreatedAt, OperatorID, CustomerID, CustomerName, CustomerSurname, CustomerPhone Field
		ProductID, ProductName, Duration, UnitPrice, TotalAmount, Status, Note, StartDate   Field
	}{
		ID:              Field{"buyurtma id", "id"},
		CreatedAt:       Field{"saqlash vaqti", "sana"},
		OperatorID:      Field{"operator id", "operator_id"},
		CustomerID:      Field{"mijoz id", "mijoz_id"},
		CustomerName:    Field{"mijoz ism", "mijoz_ism"},
		CustomerSurname: Field{"mijoz familya", "mijoz_familya"},
		CustomerPhone:   Field{"mijoz tel nomer", "mijoz_tel_nomer"},
		ProductID:       Field{"tovar id", "tovar_id"},
		ProductName:     Field{"kurs turi", "tovar"},
		Duration:        Field{"davomiyligi"},
		UnitPrice:       Field{"oyli to'lov", "narxi"},
		TotalAmount:     Field{"jami to'lov", "jami_summa"},
		Status:          Field{"buyurtma holati", "holat"},
		Note:            Field{"izoh"},
		StartDate:       Field{"kursni boshlash vaqti", "kurs_boshlash_vaqti"},
	}

	historyFields = struct {
		OrderID, Date, Status, OperatorID, Note Field
	}{
		OrderID: Field{"buyurtma id", "id"},
		// The edit time is the moment of the change; "saqlash vaqti" repeats the order creation time.
		Date:       Field{"taxrirlangan vaqti", "saqlash vaqti", "sana"},
		Status:     Field{"buyurtma holati", "holat"},
		OperatorID: Field{"operator id", "operator_id"},
		Note:       Field{"izoh"},
	}

	taskFields = struct {
		ID, CustomerID, CreatedAt, OperatorID, OperatorName, CreatorID, CreatorName, Text, Deadline, Status Field
	}{
		ID:           Field{"topshiriq id", "id"},
		CustomerID:   Field{"mijoz id", "mijoz_id"},
		CreatedAt:    Field{"saqlash vaqti", "time data", "time_data"},
		OperatorID:   Field{"operator id", "operator_id"},
		OperatorName: Field{"operator"},
		CreatorID:    Field{"yaratuvchi id", "yaratuvchi_id"},
		CreatorName:  Field{"yaratuvchi"},
		Text:         Field{"topshiriq"},
		Deadline:     Field{"bajarish vaqti", "topshiriq vaqti", "topshiriq_vaqti"},
		Status:       Field{"topshiriq holati", "holati"},
	}
)
