package engine

// NoticeKind selects how a notice is styled.
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is transient feedback for the user. Notices are not part of the
// chart and are never recorded in history.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Messages shown by the presentation layer.
const (
	MsgAddDimensionsFirst = "Please add dimensions first."
	MsgImported           = "Configuration imported successfully!"
	MsgImportFailed       = "Failed to import configuration. Please check the file format."
	MsgHTMLTableCopied    = "HTML table copied!"
	MsgLaTeXTableCopied   = "LaTeX table copied!"
	MsgTextCopied         = "Text copied to clipboard"
	MsgNotRendered        = "Please ensure the chart has been rendered."
)

// Notify queues a notice. The presentation layer uses it for outcomes it
// observes itself, such as a finished clipboard write.
func (e *Engine) Notify(kind NoticeKind, message string) {
	e.notify(kind, message)
}

func (e *Engine) notify(kind NoticeKind, message string) {
	e.notices = append(e.notices, Notice{Kind: kind, Message: message})
}

// DrainNotices returns the queued notices and clears the queue.
func (e *Engine) DrainNotices() []Notice {
	n := e.notices
	e.notices = nil
	return n
}
