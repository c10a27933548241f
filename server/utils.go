package server

import (
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"

	"yatube/feeds"
	"yatube/utils"
)

func sendError(w http.ResponseWriter, errorCode int, message string) {
	log.Info(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errorCode)
	resp := map[string]string{
		"error": message,
	}
	jsonResp := utils.ToJson(resp)
	w.Write(jsonResp)
}

func sendJson(w http.ResponseWriter, statusCode int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(utils.ToJson(value))
}

func getQueryItem(values url.Values, key string) *string {
	value := values[key]
	result := ""
	if len(value) == 1 {
		result = value[0]
	}
	return &result
}

func getPageParams(values url.Values) feeds.QueryParams {
	return feeds.QueryParams{
		Page: utils.IntFromString(*getQueryItem(values, "page"), 1),
		Size: utils.IntFromString(*getQueryItem(values, "size"), feeds.DefaultPageSize),
	}
}
