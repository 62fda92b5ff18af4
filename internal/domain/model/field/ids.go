package field

// Brief flow fields
const (
	State             ID = "state"
	LocalGovernment   ID = "localGovernment"
	Area              ID = "area"
	Price             ID = "price"
	LeaseHold         ID = "leaseHold"
	LandSize          ID = "landSize"
	MeasurementType   ID = "measurementType"
	PropertyCondition ID = "propertyCondition"
	TypeOfBuilding    ID = "typeOfBuilding"
	Bedrooms          ID = "bedrooms"
	ShortletDuration  ID = "shortletDuration"
	StreetAddress     ID = "streetAddress"
	MaxGuests         ID = "maxGuests"

	Documents      ID = "documents"
	Features       ID = "features"
	TenantCriteria ID = "tenantCriteria"
	JVConditions   ID = "jvConditions"
	AdditionalInfo ID = "additionalInfo"

	AvailableFrom   ID = "availableFrom"
	MinStay         ID = "minStay"
	MaxStay         ID = "maxStay"
	NightlyPrice    ID = "nightlyPrice"
	WeeklyDiscount  ID = "weeklyDiscount"
	CleaningFee     ID = "cleaningFee"
	SecurityDeposit ID = "securityDeposit"
	PaymentMethod   ID = "paymentMethod"

	HouseRules     ID = "houseRules"
	CheckInTime    ID = "checkInTime"
	CheckOutTime   ID = "checkOutTime"
	SmokingAllowed ID = "smokingAllowed"
	PetsAllowed    ID = "petsAllowed"
	PartiesAllowed ID = "partiesAllowed"
)

// Contact fields shared by both flows
const (
	FullName        ID = "fullName"
	Email           ID = "email"
	PhoneNumber     ID = "phoneNumber"
	ConsentAccepted ID = "consentAccepted"
)

// Preference flow fields
const (
	PrefState            ID = "prefState"
	PrefLocalGovernments ID = "prefLocalGovernments"
	PrefAreas            ID = "prefAreas"
	CustomLocation       ID = "customLocation"
	MinBudget            ID = "minBudget"
	MaxBudget            ID = "maxBudget"

	PrefBedrooms          ID = "prefBedrooms"
	PrefBuildingType      ID = "prefBuildingType"
	PrefPropertyCondition ID = "prefPropertyCondition"
	PrefLandSize          ID = "prefLandSize"
	PrefMeasurementType   ID = "prefMeasurementType"
	PrefDocuments         ID = "prefDocuments"
	PrefFeatures          ID = "prefFeatures"
	LeaseDuration         ID = "leaseDuration"
	CheckInDate           ID = "checkInDate"
	CheckOutDate          ID = "checkOutDate"
	GuestCount            ID = "guestCount"
	DeveloperCompany      ID = "developerCompany"
	CACNumber             ID = "cacNumber"
	AdditionalNotes       ID = "additionalNotes"
)
