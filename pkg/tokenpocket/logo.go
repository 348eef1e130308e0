package tokenpocket

// logo TokenPocket 按钮图标
const logo = "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciIHZpZXdCb3g9IjAgMCA2NCA2NCI+PHJlY3Qgd2lkdGg9IjY0IiBoZWlnaHQ9IjY0IiByeD0iMTIiIGZpbGw9IiMyOTgwRkUiLz48cGF0aCBkPSJNMTQgMTZoMjJ2MTBoLTd2MjJIMTlWMjZoLTV6IiBmaWxsPSIjRkZGIi8+PHBhdGggZD0iTTM4IDE2aDRhMTIgMTIgMCAwIDEgMCAyNGgtNHoiIGZpbGw9IiMyOUFFRkYiLz48L3N2Zz4="
