package cascade

import "errors"

var ErrUnsupportedRoot = errors.New("entity kind cannot be a removal root")

type Kind string

const (
	KindProperty Kind = "property"
	KindClient   Kind = "client"
	KindDeal     Kind = "deal"
	KindContract Kind = "contract"
	KindPayment  Kind = "payment"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindProperty, KindClient, KindDeal, KindContract, KindPayment:
		return true
	default:
		return false
	}
}

type Action string

const (
	ActionArchive Action = "archive"
	ActionDelete  Action = "delete"
)

func (a Action) IsValid() bool {
	return a == ActionArchive || a == ActionDelete
}

// Edge declares one dependency in the entity graph: rows of Child carry a
// foreign key to rows of Parent. The graph is static, acyclic and at most
// three levels deep; archive and delete share one traversal over it instead
// of hand-duplicated per-type walks.
type Edge struct {
	Parent     Kind
	Child      Kind
	ForeignKey string
}

var Edges = []Edge{
	{Parent: KindProperty, Child: KindDeal, ForeignKey: "property_id"},
	{Parent: KindClient, Child: KindDeal, ForeignKey: "tenant_id"},
	{Parent: KindClient, Child: KindDeal, ForeignKey: "landlord_id"},
	{Parent: KindDeal, Child: KindContract, ForeignKey: "deal_id"},
	{Parent: KindDeal, Child: KindPayment, ForeignKey: "deal_id"},
	{Parent: KindContract, Child: KindPayment, ForeignKey: "contract_id"},
}

func children(k Kind) []Kind {
	var out []Kind
	seen := map[Kind]bool{}
	for _, e := range Edges {
		if e.Parent == k && !seen[e.Child] {
			seen[e.Child] = true
			out = append(out, e.Child)
		}
	}
	return out
}
