// Package docs Transport Admin API.
//
// Сервис административной панели данных общественного транспорта.
// Предоставляет API для ведения маршрутов, остановок и справочников,
// ленту уведомлений о вводе данных, учёт присутствия операторов и
// сводные метрики панели управления.
//
// Основные возможности:
// - CRUD маршрутов, остановок и справочных коллекций
// - Лента уведомлений о событиях ввода данных с фильтрами и прочтением
// - Учёт присутствия операторов (heartbeat, история, агрегированный лог)
// - Сводные метрики: пробег, распределение по типам, качество данных
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
