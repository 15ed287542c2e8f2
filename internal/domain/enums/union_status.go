package enums

type UnionStatus string

const (
	UnionSAGAFTRA UnionStatus = "SAG-AFTRA"
	UnionEquity   UnionStatus = "Equity"
	UnionNone     UnionStatus = "Non-Union"
)
