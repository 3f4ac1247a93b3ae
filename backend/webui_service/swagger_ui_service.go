// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 Canonical Ltd.

package webui_service

import (
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/omec-project/slice-webconsole/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		Slice Webconsole API Documentation
//	@version	1.0

//	@contact.name	OMEC Project - Slice Webconsole

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:5001
// @BasePath	/
func AddSwaggerUiService(engine *gin.Engine, port int) {
	logger.WebUILog.Infoln("Adding Swagger UI service")
	host := os.Getenv("SWAGGER_HOST")
	if host != "" {
		docs.SwaggerInfo.Host = host + ":" + strconv.Itoa(port)
		logger.WebUILog.Infoln(docs.SwaggerInfo.Host)
	}
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
