package domain

// Constant column values of the output schema.
const (
	OrganizationType = "School"
	ContactOwner     = "Partnerships"
)

// ExportColumns is the fixed output column schema, in order.
var ExportColumns = []string{
	"Company Name",
	"Company Phone Number",
	"Company Type",
	"Company Domain",
	"Contact First Name",
	"Contact Last Name",
	"Contact Job Title",
	"Contact Email Address",
	"Contact Phone Number",
	"Owner",
	"Company State",
}

// Row renders the contact in ExportColumns order. Null values render empty.
func (c EnrichedContact) Row() []string {
	return []string{
		c.OrganizationName,
		ValueOrEmpty(c.OrganizationPhone),
		OrganizationType,
		c.OrganizationDomain,
		c.FirstName,
		c.LastName,
		c.JobTitle,
		c.Email,
		ValueOrEmpty(c.Phone),
		ContactOwner,
		ValueOrEmpty(c.OrganizationState),
	}
}
