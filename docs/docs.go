// Package docs регистрирует swagger-описание API, которое отдаётся по /swagger/*.
// Шаблон поддерживается вручную вместе с аннотациями хендлеров.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/tournaments/{tournamentID}": {
            "delete": {
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Очистить турнир",
                "tags": [
                    "tournaments"
                ],
                "description": "Удаляет все данные турнира, кроме настроек.",
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Snapshot"
                        }
                    }
                },
                "summary": "Все данные турнира",
                "tags": [
                    "tournaments"
                ],
                "description": "Участники, клубы, группы, таблицы, история матчей, сетка, настройки и текущий этап.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/bracket": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "409": {
                        "description": "Сетку ещё нельзя построить",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Сетка плей-офф",
                "tags": [
                    "knockout"
                ],
                "description": "Возвращает сохранённую сетку. Если её нет, а команд хватает, сетка строится.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "409": {
                        "description": "Сетка уже есть или команд не хватает",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Построить сетку",
                "tags": [
                    "knockout"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/bracket/matches/{matchID}": {
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.KnockoutResult"
                        }
                    },
                    "400": {
                        "description": "Ошибка валидации",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Соперники ещё не известны",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Записать результат матча плей-офф",
                "tags": [
                    "knockout"
                ],
                "description": "Ничья в основное время требует дополнительного, ничья в дополнительное требует пенальти. Изменение результата сбрасывает зависимые матчи.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "qf1..qf4, sf1, sf2, final, thirdPlace",
                        "name": "matchID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Счёт",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/brackets.KnockoutScore"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/bracket/reset": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                },
                "summary": "Пересобрать сетку",
                "tags": [
                    "knockout"
                ],
                "description": "Удаляет все результаты плей-офф и заново строит сетку по текущим таблицам.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/clubs": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                },
                "summary": "Свободные клубы",
                "tags": [
                    "clubs"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Сбросить клубы",
                "tags": [
                    "clubs"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/clubs/assign-remaining": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "409": {
                        "description": "Нет порядка или клубов не хватает",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Раздать клубы всем оставшимся",
                "tags": [
                    "clubs"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/clubs/assign/{participantID}": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "400": {
                        "description": "Клуб уже назначен",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Участник не найден",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Нет порядка или пул пуст",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Выбрать клуб участнику",
                "tags": [
                    "clubs"
                ],
                "description": "Случайный клуб из пула закрепляется за участником.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Participant ID (UUID)",
                        "name": "participantID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/export.xlsx": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "summary": "Выгрузка в Excel",
                "tags": [
                    "tournaments"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/groups": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                },
                "summary": "Группы",
                "tags": [
                    "groups"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Сбросить жеребьёвку",
                "tags": [
                    "groups"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/groups/draw": {
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/brackets.GroupDraw"
                        }
                    },
                    "409": {
                        "description": "Не у всех есть клубы, группы уже есть или участников мало",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Жеребьёвка групп",
                "tags": [
                    "groups"
                ],
                "description": "Распределяет участников по группам и создаёт пустые таблицы. Ответ содержит порядок жеребьёвки.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/matches": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                },
                "summary": "История матчей группового этапа",
                "tags": [
                    "matches"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "400": {
                        "description": "Ошибка валидации",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Нет групп или плей-офф уже идёт",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Записать матч группы",
                "tags": [
                    "matches"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Группа, команды и счёт",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/brackets.MatchInput"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/matches/{matchID}": {
            "delete": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "404": {
                        "description": "Матч не найден",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Плей-офф уже идёт",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Удалить матч группы",
                "tags": [
                    "matches"
                ],
                "description": "Удаляет запись и полностью откатывает её вклад в таблицу.",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Match ID (UUID)",
                        "name": "matchID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/ordering": {
            "post": {
                "responses": {
                    "200": {
                        "description": "Участники с порядковыми номерами",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "409": {
                        "description": "Порядок уже назначен или участников меньше двух",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Случайный порядок участников",
                "tags": [
                    "ordering"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Сбросить порядок",
                "tags": [
                    "ordering"
                ],
                "description": "Удаляет порядок, клубы, группы, таблицы, историю и сетку. Список имён сохраняется.",
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/participants": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/services.Roster"
                        }
                    }
                },
                "summary": "Список участников",
                "tags": [
                    "participants"
                ],
                "description": "Участники до жеребьёвки порядка (participant_names) и после неё (participants, по порядку).",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Участник создан",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "400": {
                        "description": "Ошибка валидации",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Приём участников закрыт или список полон",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Добавить участника",
                "tags": [
                    "participants"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Имя, аватар, ссылка на картинку",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.ParticipantInput"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/participants/{participantID}": {
            "delete": {
                "responses": {
                    "204": {
                        "description": "OK"
                    },
                    "404": {
                        "description": "Участник не найден",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Удалить участника",
                "tags": [
                    "participants"
                ],
                "description": "Удаляет участника из списков, групп, таблиц и истории матчей. Клуб возвращается в пул, сетка плей-офф сбрасывается.",
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Participant ID (UUID)",
                        "name": "participantID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/qualifiers": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/brackets.Qualification"
                        }
                    },
                    "409": {
                        "description": "Групп нет или команд не хватает",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Вышедшие из групп и корзины посева",
                "tags": [
                    "knockout"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/settings": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.TournamentSettings"
                        }
                    }
                },
                "summary": "Настройки турнира",
                "tags": [
                    "settings"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "put": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.TournamentSettings"
                        }
                    },
                    "400": {
                        "description": "Неверные размеры групп",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Группы уже разыграны",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Изменить настройки",
                "tags": [
                    "settings"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Настройки целиком",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.TournamentSettings"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/standings": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    }
                },
                "summary": "Таблицы групп",
                "tags": [
                    "standings"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "OK"
                    }
                },
                "summary": "Обнулить таблицы",
                "tags": [
                    "standings"
                ],
                "description": "Обнуляет таблицы, удаляет историю матчей и сетку плей-офф. Группы сохраняются.",
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/api/tournaments/{tournamentID}/standings/progress": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {}
                        }
                    },
                    "409": {
                        "description": "Группы ещё не разыграны",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Сыгранные матчи по группам",
                "tags": [
                    "standings"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/healthz": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Проверка живости",
                "tags": [
                    "system"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/ws/tournaments/{tournamentID}/reveal/{kind}": {
            "get": {
                "responses": {
                    "101": {
                        "description": "Error"
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Этап ещё не пройден",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Поэтапный показ (websocket)",
                "tags": [
                    "reveal"
                ],
                "description": "Кадры анимации порядка, выбора клубов или жеребьёвки групп. Результат уже сохранён, поток только показывает его.",
                "parameters": [
                    {
                        "description": "Tournament ID",
                        "name": "tournamentID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "ordering | clubs | groups",
                        "name": "kind",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Пауза между кадрами (250ms, 0 - без пауз)",
                        "name": "pace",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ]
            }
        }
    },
    "definitions": {
        "brackets.GroupDraw": {
            "type": "object"
        },
        "brackets.KnockoutScore": {
            "type": "object"
        },
        "brackets.MatchInput": {
            "type": "object"
        },
        "brackets.Qualification": {
            "type": "object"
        },
        "models.Snapshot": {
            "type": "object"
        },
        "models.TournamentSettings": {
            "type": "object"
        },
        "services.KnockoutResult": {
            "type": "object"
        },
        "services.ParticipantInput": {
            "type": "object"
        },
        "services.Roster": {
            "type": "object"
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cup Organizer API",
	Description:      "Группы, таблицы и плей-офф кубкового турнира.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
