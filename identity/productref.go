package identity

// GeneralFeedbackTitle is displayed when a review carries no product identity.
const GeneralFeedbackTitle = "General feedback"

type ProductKind int

const (
	// ProductNone marks a review with no product linkage.
	ProductNone ProductKind = iota
	// ProductCatalog references a menu item by id.
	ProductCatalog
	// ProductFreeText names a product by free text only.
	ProductFreeText
)

// ProductRef is the product identity of a review as a tagged variant. Exactly
// one of ItemID and Text is meaningful, selected by Kind.
type ProductRef struct {
	Kind   ProductKind
	ItemID string
	Text   string
}

// NewProductRef builds a ProductRef from the two request fields. A catalog id
// always wins: free text is discarded when an id is present.
func NewProductRef(menuItemID, freeText string) ProductRef {
	if menuItemID != "" {
		return ProductRef{Kind: ProductCatalog, ItemID: menuItemID}
	}
	if freeText != "" {
		return ProductRef{Kind: ProductFreeText, Text: freeText}
	}
	return ProductRef{Kind: ProductNone}
}

// DisplayTitle resolves the title shown for the reference. titleByID reports
// the catalog title for an item id; a dangling id degrades to the general
// feedback fallback instead of failing.
func (p ProductRef) DisplayTitle(titleByID func(id string) (string, bool)) string {
	switch p.Kind {
	case ProductCatalog:
		if titleByID != nil {
			if title, ok := titleByID(p.ItemID); ok && title != "" {
				return title
			}
		}
		return GeneralFeedbackTitle
	case ProductFreeText:
		return p.Text
	default:
		return GeneralFeedbackTitle
	}
}
