// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package logging builds zap loggers from viper configuration using sallust, and supplies
test loggers.  Loggers travel through contexts with sallust.With and sallust.Get.
*/
package logging
