package app

import "net/http"

type errCtx struct {
	Code  int
	Title string
	Msg   string
}

func get400() errCtx {
	return errCtx{
		Code:  http.StatusBadRequest,
		Title: "Bad request",
		Msg:   "Sorry, we couldn't understand that request.",
	}
}

func get404() errCtx {
	return errCtx{
		Code:  http.StatusNotFound,
		Title: "Design Kit Not Found",
		Msg:   "Sorry, we couldn't find the design kit you were looking for.",
	}
}

func get429() errCtx {
	return errCtx{
		Code:  http.StatusTooManyRequests,
		Title: "Too many requests",
		Msg:   "Slow down a little and try again in a moment.",
	}
}

func get500() errCtx {
	return errCtx{
		Code:  http.StatusInternalServerError,
		Title: "Internal server error",
		Msg:   "Sorry, there was an internal server error.",
	}
}
