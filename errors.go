package automap

const (
	ErrMsgNilSource       = "Source instance cannot be nil."
	ErrMsgNilDestination  = "Destination instance cannot be nil."
	ErrMsgSourceKind      = "Source must be a struct or a non-nil pointer to a struct."
	ErrMsgDestKind        = "Destination must be a non-nil pointer to a struct."
	ErrMsgUnconstructable = "Destination type cannot be default constructed."
)
